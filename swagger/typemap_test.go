package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalvas/swaggerdoc/validation"
)

func TestMapType(t *testing.T) {
	yes := validation.Bool(true)

	tests := []struct {
		name string
		rule validation.FieldRule
		want string
	}{
		{"empty rule", validation.FieldRule{}, TypeString},
		{"explicit type", validation.FieldRule{SwaggerType: "asdf"}, "asdf"},
		{"explicit type wins over flags", validation.FieldRule{SwaggerType: "Pet", IsDate: yes, IsInt: yes}, "Pet"},
		{"date", validation.FieldRule{IsDate: yes}, TypeDateTime},
		{"date before boolean", validation.FieldRule{IsDate: yes, IsBoolean: yes}, TypeDateTime},
		{"boolean", validation.FieldRule{IsBoolean: yes}, TypeBoolean},
		{"int", validation.FieldRule{IsInt: yes}, TypeInteger},
		{"numeric", validation.FieldRule{IsNumeric: yes}, TypeInteger},
		{"float", validation.FieldRule{IsFloat: yes}, TypeFloat},
		{"decimal", validation.FieldRule{IsDecimal: yes}, TypeFloat},
		{"integer before float", validation.FieldRule{IsInt: yes, IsFloat: yes}, TypeInteger},
		{"json object", validation.FieldRule{IsJSONObject: yes}, TypeObject},
		{"json array", validation.FieldRule{IsJSONArray: yes}, TypeArray},
		{"object before array", validation.FieldRule{IsJSONObject: yes, IsJSONArray: yes}, TypeObject},
		{"false flags are ignored", validation.FieldRule{IsDate: validation.Bool(false)}, TypeString},
		{"array container type does not change the tag", validation.FieldRule{Type: "array"}, TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.rule))
		})
	}
}
