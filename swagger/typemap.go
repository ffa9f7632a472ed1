package swagger

import "github.com/vitalvas/swaggerdoc/validation"

// Type tags produced by MapType.
const (
	TypeString   = "string"
	TypeDateTime = "dateTime"
	TypeBoolean  = "boolean"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeObject   = "object"
	TypeArray    = "array"
)

// MapType returns the document type of a field. An explicit SwaggerType is
// used verbatim; otherwise the first set flag in the order date, boolean,
// integer, float, JSON object, JSON array decides. Anything else is a
// string.
func MapType(rule validation.FieldRule) string {
	switch {
	case rule.HasSwaggerType():
		return rule.SwaggerType
	case validation.Flag(rule.IsDate):
		return TypeDateTime
	case validation.Flag(rule.IsBoolean):
		return TypeBoolean
	case validation.Flag(rule.IsInt), validation.Flag(rule.IsNumeric):
		return TypeInteger
	case validation.Flag(rule.IsFloat), validation.Flag(rule.IsDecimal):
		return TypeFloat
	case validation.Flag(rule.IsJSONObject):
		return TypeObject
	case validation.Flag(rule.IsJSONArray):
		return TypeArray
	default:
		return TypeString
	}
}
