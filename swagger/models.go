package swagger

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ModelGenerator derives models from Go struct types. Field names and
// optionality follow the encoding/json tags; a field is required unless it
// is tagged omitempty or omitzero. A `swagger` struct tag adds details:
//
//	Status string `json:"status" swagger:"description=Pet status,enum=available|sold,default=available"`
//
// Named struct types become models of their own and are referenced by name.
type ModelGenerator struct {
	models    map[string]*Model
	visited   map[reflect.Type]bool
	typeNames map[reflect.Type]string
	nameTypes map[string]reflect.Type
}

// NewModelGenerator returns an empty generator.
func NewModelGenerator() *ModelGenerator {
	return &ModelGenerator{
		models:    make(map[string]*Model),
		visited:   make(map[reflect.Type]bool),
		typeNames: make(map[reflect.Type]string),
		nameTypes: make(map[string]reflect.Type),
	}
}

// ModelsFor returns the models of every value's type and of the named
// struct types they reach.
func ModelsFor(values ...any) map[string]*Model {
	g := NewModelGenerator()
	for _, v := range values {
		g.Add(v)
	}
	return g.Models()
}

// Add generates the model of v's type and returns its name, or "" when v
// is not a named struct.
func (g *ModelGenerator) Add(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	return g.structModel(t)
}

// Models returns every model generated so far, keyed by name.
func (g *ModelGenerator) Models() map[string]*Model {
	return g.models
}

var timeType = reflect.TypeOf(time.Time{})

// property maps a Go type to a property. It returns nil for types with no
// JSON form, such as channels and functions.
func (g *ModelGenerator) property(t reflect.Type) *Property {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return &Property{Type: TypeDateTime}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Property{Type: TypeBoolean}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Property{Type: TypeInteger}
	case reflect.Float32, reflect.Float64:
		return &Property{Type: TypeFloat}
	case reflect.String:
		return &Property{Type: TypeString}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Property{Type: TypeString}
		}
		elem := g.property(t.Elem())
		if elem == nil {
			return nil
		}
		return &Property{Type: TypeArray, Items: &Items{Ref: elem.Type}}
	case reflect.Struct:
		if name := g.structModel(t); name != "" {
			return &Property{Type: name}
		}
		return &Property{Type: TypeObject}
	case reflect.Map, reflect.Interface:
		return &Property{Type: TypeObject}
	}
	return nil
}

// structModel registers the model of a named struct type and returns its
// name. Anonymous structs have no model.
func (g *ModelGenerator) structModel(t reflect.Type) string {
	name := g.modelName(t)
	if name == "" {
		return ""
	}
	if !g.visited[t] {
		g.visited[t] = true
		m := &Model{ID: name, Properties: make(map[string]*Property)}
		g.models[name] = m
		g.collectFields(t, m, false)
	}
	return name
}

// collectFields adds the fields of t to m. Fields of embedded structs
// without a json name are inlined; those of embedded pointers are optional.
func (g *ModelGenerator) collectFields(t reflect.Type, m *Model, allOptional bool) {
	for i := range t.NumField() {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, omitempty := parseJSONTag(jsonTag)

		if field.Anonymous && name == "" {
			ft := field.Type
			isPtr := ft.Kind() == reflect.Pointer
			if isPtr {
				ft = ft.Elem()
			}
			// encoding/json promotes the fields of embedded unexported
			// structs but ignores embedded pointers to them.
			if ft.Kind() == reflect.Struct && (field.IsExported() || !isPtr) {
				g.collectFields(ft, m, allOptional || isPtr)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		p := g.property(field.Type)
		if p == nil {
			continue
		}
		p.Required = !omitempty && !allOptional
		applyDocTag(p, field.Tag.Get("swagger"))
		m.Properties[name] = p
	}
}

func parseJSONTag(tag string) (name string, omitempty bool) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
}

// applyDocTag reads description, enum (values separated by |), default and
// type overrides from a swagger struct tag.
func applyDocTag(p *Property, tag string) {
	if tag == "" {
		return
	}
	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(part, "=")
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "description":
			p.Description = value
		case "type":
			p.Type = value
		case "enum":
			values := strings.Split(value, "|")
			p.AllowableValues = &AllowableValues{ValueType: "LIST", Values: make([]any, len(values))}
			for i, v := range values {
				p.AllowableValues.Values[i] = typedValue(p.Type, v)
			}
		case "default":
			p.DefaultValue = typedValue(p.Type, value)
		}
	}
}

// typedValue parses s as a value of the given property type. Values that
// do not parse stay strings.
func typedValue(typ, s string) any {
	switch typ {
	case TypeInteger:
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	case TypeFloat:
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	case TypeBoolean:
		if v, err := strconv.ParseBool(s); err == nil {
			return v
		}
	}
	return s
}

// modelName returns a unique model name for t. A second type with the same
// simple name from another package is prefixed with its package name, and
// a numeric suffix is added if that still collides.
func (g *ModelGenerator) modelName(t reflect.Type) string {
	simple := t.Name()
	if i := strings.IndexByte(simple, '['); i >= 0 {
		simple = simple[:i]
	}
	if simple == "" || t.PkgPath() == "" {
		return ""
	}
	if name, ok := g.typeNames[t]; ok {
		return name
	}

	name := simple
	if other, ok := g.nameTypes[name]; ok && other != t {
		pkg := t.PkgPath()
		if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
			pkg = pkg[i+1:]
		}
		base := capitalize(camelCase(strings.NewReplacer("-", " ", ".", " ").Replace(pkg))) + simple
		name = base
		for i := 2; g.nameTypes[name] != nil; i++ {
			name = base + strconv.Itoa(i)
		}
	}

	g.typeNames[t] = name
	g.nameTypes[name] = t
	return name
}
