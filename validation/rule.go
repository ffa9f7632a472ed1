package validation

import (
	"sort"
)

// Scope is the request location a field is read from.
type Scope string

const (
	ScopeQuery  Scope = "query"
	ScopePath   Scope = "path"
	ScopeHeader Scope = "header"
	ScopeBody   Scope = "body"
	ScopeForm   Scope = "form"
)

// FieldRule is one fragment of the validation metadata for a single field.
// Every attribute is optional: nil pointers, nil slices and empty strings
// mean "not set" and never override a value from an earlier fragment.
type FieldRule struct {
	// Required marks the field as mandatory.
	Required *bool

	// In is the closed set of allowed values.
	In []any

	// DefaultValue is the value assumed when the field is absent.
	DefaultValue any

	// Description is free text shown next to the field.
	Description string

	// Scope is where the field is read from. Unset means query.
	Scope Scope

	// SwaggerScope overrides Scope for documentation of file uploads.
	SwaggerScope Scope

	// SwaggerType is an explicit documentation type. It wins over every
	// Is* flag. The special value "file" documents an upload.
	SwaggerType string

	// Type is the container type of the field. "array" documents a list
	// whose element type is derived from the remaining attributes.
	Type string

	IsDate       *bool
	IsBoolean    *bool
	IsInt        *bool
	IsNumeric    *bool
	IsFloat      *bool
	IsDecimal    *bool
	IsJSONObject *bool
	IsJSONArray  *bool
}

// Bool returns a pointer to v for use in FieldRule literals.
func Bool(v bool) *bool {
	return &v
}

// IsRequired reports whether the rule marks the field as mandatory.
func (r FieldRule) IsRequired() bool {
	return isSet(r.Required)
}

// HasSwaggerType reports whether an explicit documentation type is declared.
func (r FieldRule) HasSwaggerType() bool {
	return r.SwaggerType != ""
}

func isSet(b *bool) bool {
	return b != nil && *b
}

// Flag reports the value of a boolean attribute, treating nil as false.
func Flag(b *bool) bool {
	return isSet(b)
}

// Merge overlays fragments left to right. Attributes set on a later
// fragment replace those of an earlier one; unset attributes are ignored.
// Merge is associative: Merge(a, Merge(b, c)) == Merge(Merge(a, b), c).
func Merge(fragments ...FieldRule) FieldRule {
	var out FieldRule
	for _, f := range fragments {
		out = overlay(out, f)
	}
	return out
}

func overlay(dst, src FieldRule) FieldRule {
	if src.Required != nil {
		dst.Required = src.Required
	}
	if src.In != nil {
		dst.In = src.In
	}
	if src.DefaultValue != nil {
		dst.DefaultValue = src.DefaultValue
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Scope != "" {
		dst.Scope = src.Scope
	}
	if src.SwaggerScope != "" {
		dst.SwaggerScope = src.SwaggerScope
	}
	if src.SwaggerType != "" {
		dst.SwaggerType = src.SwaggerType
	}
	if src.Type != "" {
		dst.Type = src.Type
	}
	dst.IsDate = overlayBool(dst.IsDate, src.IsDate)
	dst.IsBoolean = overlayBool(dst.IsBoolean, src.IsBoolean)
	dst.IsInt = overlayBool(dst.IsInt, src.IsInt)
	dst.IsNumeric = overlayBool(dst.IsNumeric, src.IsNumeric)
	dst.IsFloat = overlayBool(dst.IsFloat, src.IsFloat)
	dst.IsDecimal = overlayBool(dst.IsDecimal, src.IsDecimal)
	dst.IsJSONObject = overlayBool(dst.IsJSONObject, src.IsJSONObject)
	dst.IsJSONArray = overlayBool(dst.IsJSONArray, src.IsJSONArray)
	return dst
}

func overlayBool(dst, src *bool) *bool {
	if src != nil {
		return src
	}
	return dst
}

// Fragments is the ordered list of rule fragments describing one field.
type Fragments []FieldRule

// Field builds the fragment list for one field.
func Field(fragments ...FieldRule) Fragments {
	return Fragments(fragments)
}

// Merged collapses the fragments into a single rule.
func (f Fragments) Merged() FieldRule {
	return Merge(f...)
}

// Rules maps a field name to its rule fragments.
type Rules map[string]Fragments

// Has reports whether a rule is declared for name.
func (r Rules) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Names returns the declared field names in sorted order.
func (r Rules) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
