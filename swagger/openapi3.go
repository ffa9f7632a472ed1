package swagger

import (
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	openAPIVersion  = "3.0.3"
	schemaRefPrefix = "#/components/schemas/"
	defaultDocTitle = "API documentation"
	successResponse = "Success"
)

// ExportOpenAPI3 converts rendered discovery documents into an OpenAPI 3
// document. Each resource becomes a tag, each model a component schema and
// each body parameter a request body referencing its schema. Form and file
// parameters are gathered into a multipart request body.
func ExportOpenAPI3(listing *ResourceListing, decls []*APIDeclaration) *openapi3.T {
	x := &openAPIExporter{
		schemas: make(openapi3.Schemas),
		opIDs:   make(map[string]bool),
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info:    exportInfo(listing),
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: x.schemas,
		},
	}
	if listing.BasePath != "" {
		doc.Servers = openapi3.Servers{{URL: listing.BasePath}}
	}

	// Declare every schema before filling any, so references resolve to
	// shared values regardless of order.
	for _, decl := range decls {
		for name := range decl.Models {
			if _, ok := x.schemas[name]; !ok {
				x.schemas[name] = &openapi3.SchemaRef{Value: openapi3.NewObjectSchema()}
			}
		}
	}
	for _, decl := range decls {
		for name, m := range decl.Models {
			x.fillModel(x.schemas[name].Value, m)
		}
	}

	for _, decl := range decls {
		tag := path.Base(decl.ResourcePath)
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: tag, Description: descriptionFor(listing, decl.ResourcePath)})

		for _, api := range decl.APIs {
			item := doc.Paths.Value(api.Path)
			if item == nil {
				item = &openapi3.PathItem{Description: api.Description}
				doc.Paths.Set(api.Path, item)
			}
			for _, op := range api.Operations {
				item.SetOperation(op.Method, x.operation(op, tag))
			}
		}
	}

	return doc
}

type openAPIExporter struct {
	schemas openapi3.Schemas
	opIDs   map[string]bool
}

func exportInfo(listing *ResourceListing) *openapi3.Info {
	info := &openapi3.Info{Title: defaultDocTitle, Version: listing.APIVersion}
	if in := listing.Info; in != nil {
		if in.Title != "" {
			info.Title = in.Title
		}
		info.Description = in.Description
		info.TermsOfService = in.TermsOfServiceURL
		if in.Contact != "" {
			info.Contact = &openapi3.Contact{Email: in.Contact}
		}
		if in.License != "" {
			info.License = &openapi3.License{Name: in.License, URL: in.LicenseURL}
		}
	}
	return info
}

func descriptionFor(listing *ResourceListing, resourcePath string) string {
	for _, ref := range listing.APIs {
		if ref.Path == resourcePath {
			return ref.Description
		}
	}
	return ""
}

func (x *openAPIExporter) fillModel(schema *openapi3.Schema, m *Model) {
	var required []string
	for name, p := range m.Properties {
		if p == nil {
			continue
		}
		schema.WithPropertyRef(name, x.propertySchema(p))
		if p.Required {
			required = append(required, name)
		}
	}
	if len(required) > 0 {
		slices.Sort(required)
		schema.WithRequired(required)
	}
}

// propertySchema returns the schema of a property or parameter. Model
// names become references.
func (x *openAPIExporter) propertySchema(p *Property) *openapi3.SchemaRef {
	if p.Type == TypeArray {
		items := TypeString
		if p.Items != nil && p.Items.Ref != "" {
			items = p.Items.Ref
		}
		arr := openapi3.NewArraySchema()
		arr.Items = x.typeSchema(items)
		return &openapi3.SchemaRef{Value: decorate(arr, p)}
	}

	ref := x.typeSchema(p.Type)
	if ref.Ref != "" {
		return ref
	}
	ref.Value = decorate(ref.Value, p)
	return ref
}

func decorate(s *openapi3.Schema, p *Property) *openapi3.Schema {
	s.Description = p.Description
	if p.AllowableValues != nil {
		s.WithEnum(p.AllowableValues.Values...)
	}
	if p.DefaultValue != nil {
		s.WithDefault(p.DefaultValue)
	}
	return s
}

func (x *openAPIExporter) typeSchema(typ string) *openapi3.SchemaRef {
	var s *openapi3.Schema
	switch typ {
	case "", TypeString:
		s = openapi3.NewStringSchema()
	case TypeDateTime:
		s = openapi3.NewDateTimeSchema()
	case TypeBoolean:
		s = openapi3.NewBoolSchema()
	case TypeInteger:
		s = openapi3.NewIntegerSchema()
	case TypeFloat:
		s = openapi3.NewFloat64Schema()
	case TypeObject:
		s = openapi3.NewObjectSchema()
	case TypeArray:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case swaggerTypeFile:
		s = openapi3.NewStringSchema().WithFormat("binary")
	default:
		if model, ok := x.schemas[typ]; ok {
			return &openapi3.SchemaRef{Ref: schemaRefPrefix + typ, Value: model.Value}
		}
		s = openapi3.NewObjectSchema()
	}
	return &openapi3.SchemaRef{Value: s}
}

func (x *openAPIExporter) operation(op *Operation, tag string) *openapi3.Operation {
	out := openapi3.NewOperation()
	out.OperationID = x.operationID(op)
	out.Summary = op.Summary
	out.Description = op.Notes
	out.Tags = []string{tag}

	form := openapi3.NewObjectSchema()
	var formRequired []string

	for _, p := range op.Parameters {
		switch p.ParamType {
		case paramTypeBody:
			body := openapi3.NewRequestBody().
				WithDescription(p.Description).
				WithRequired(true).
				WithContent(content(op.Consumes, x.typeSchema(p.DataType)))
			out.RequestBody = &openapi3.RequestBodyRef{Value: body}
		case paramTypePath, paramTypeQuery, paramTypeHeader:
			out.AddParameter(x.parameter(p))
		default:
			form.WithPropertyRef(p.Name, x.propertySchema(&p.Property))
			if p.Required {
				formRequired = append(formRequired, p.Name)
			}
		}
	}

	if len(form.Properties) > 0 && out.RequestBody == nil {
		if len(formRequired) > 0 {
			form.WithRequired(formRequired)
		}
		body := openapi3.NewRequestBody().WithContent(openapi3.NewContentWithFormDataSchema(form))
		out.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	out.Responses = openapi3.NewResponsesWithCapacity(len(op.ResponseMessages) + 1)
	success := openapi3.NewResponse().WithDescription(successResponse)
	if op.ResponseClass != "" {
		success.WithContent(content(op.Produces, x.typeSchema(op.ResponseClass)))
	}
	out.AddResponse(http.StatusOK, success)
	for _, m := range op.ResponseMessages {
		resp := openapi3.NewResponse().WithDescription(m.Message)
		if m.ResponseModel != "" {
			resp.WithContent(content(op.Produces, x.typeSchema(m.ResponseModel)))
		}
		out.AddResponse(m.Code, resp)
	}

	return out
}

func (x *openAPIExporter) parameter(p Parameter) *openapi3.Parameter {
	var param *openapi3.Parameter
	switch p.ParamType {
	case paramTypePath:
		param = openapi3.NewPathParameter(p.Name)
	case paramTypeHeader:
		param = openapi3.NewHeaderParameter(p.Name)
	default:
		param = openapi3.NewQueryParameter(p.Name)
	}
	param.Description = p.Description
	if p.Required || p.ParamType == paramTypePath {
		param.Required = true
	}
	param.Schema = x.propertySchema(&p.Property)
	return param
}

// operationID returns the nickname, suffixed with the method and a counter
// when it is already taken.
func (x *openAPIExporter) operationID(op *Operation) string {
	id := op.Nickname
	if x.opIDs[id] {
		id = op.Nickname + capitalize(strings.ToLower(op.Method))
	}
	for i := 2; x.opIDs[id]; i++ {
		id = op.Nickname + capitalize(strings.ToLower(op.Method)) + strconv.Itoa(i)
	}
	x.opIDs[id] = true
	return id
}

func content(mediaTypes []string, schema *openapi3.SchemaRef) openapi3.Content {
	c := make(openapi3.Content, len(mediaTypes))
	for _, mt := range mediaTypes {
		c[mt] = openapi3.NewMediaType().WithSchemaRef(schema)
	}
	if len(c) == 0 {
		c[DefaultMediaType] = openapi3.NewMediaType().WithSchemaRef(schema)
	}
	return c
}
