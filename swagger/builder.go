package swagger

import (
	"maps"

	"github.com/vitalvas/swaggerdoc/validation"
)

// RouteDoc is the documentation attached to one mounted route. A route is
// compiled only when Validation is non-nil.
type RouteDoc struct {
	Validation validation.Rules

	Summary       string
	Notes         string
	Nickname      string
	ResponseClass string

	Produces         []string
	Consumes         []string
	ResponseMessages []ResponseMessage

	// DocPath overrides the resource group, which defaults to the first
	// segment of the route template.
	DocPath string

	// Models are response models merged into the route's resource.
	Models map[string]*Model

	// BodyDescription describes the synthetic Body parameter. Summary is
	// used when empty.
	BodyDescription string

	// Authorizations lists the scopes that may see the route, space or
	// comma separated. Empty means public.
	Authorizations string
}

// RouteBuilder provides a fluent API for documenting a mounted route.
//
//	reg.Route(r.HandleFunc("/pets/:id", getPet).Methods(http.MethodGet)).
//	    Summary("Find pet by id").
//	    ResponseClass("Pet").
//	    Validation(validation.Rules{
//	        "id": validation.Field(validation.FieldRule{Scope: validation.ScopePath, IsInt: validation.Bool(true)}),
//	    })
type RouteBuilder struct {
	doc *RouteDoc
}

// Validation sets the field rules. Calling it, even with an empty set, is
// what makes the route documented.
func (b *RouteBuilder) Validation(rules validation.Rules) *RouteBuilder {
	if rules == nil {
		rules = validation.Rules{}
	}
	b.doc.Validation = rules
	return b
}

// Summary sets the one-line operation summary.
func (b *RouteBuilder) Summary(s string) *RouteBuilder {
	b.doc.Summary = s
	return b
}

// Notes sets the longer operation description.
func (b *RouteBuilder) Notes(s string) *RouteBuilder {
	b.doc.Notes = s
	return b
}

// Nickname overrides the name derived from the route template.
func (b *RouteBuilder) Nickname(s string) *RouteBuilder {
	b.doc.Nickname = s
	return b
}

// ResponseClass names the model returned by the operation.
func (b *RouteBuilder) ResponseClass(model string) *RouteBuilder {
	b.doc.ResponseClass = model
	return b
}

// Produces appends response media types.
func (b *RouteBuilder) Produces(mediaTypes ...string) *RouteBuilder {
	b.doc.Produces = append(b.doc.Produces, mediaTypes...)
	return b
}

// Consumes appends request media types.
func (b *RouteBuilder) Consumes(mediaTypes ...string) *RouteBuilder {
	b.doc.Consumes = append(b.doc.Consumes, mediaTypes...)
	return b
}

// ResponseMessage documents a response. An optional model name describes
// the response body.
func (b *RouteBuilder) ResponseMessage(code int, message string, model ...string) *RouteBuilder {
	rm := ResponseMessage{Code: code, Message: message}
	if len(model) > 0 {
		rm.ResponseModel = model[0]
	}
	b.doc.ResponseMessages = append(b.doc.ResponseMessages, rm)
	return b
}

// DocPath files the route under group instead of the first template
// segment.
func (b *RouteBuilder) DocPath(group string) *RouteBuilder {
	b.doc.DocPath = group
	return b
}

// Models adds response models to the route's resource.
func (b *RouteBuilder) Models(models map[string]*Model) *RouteBuilder {
	if b.doc.Models == nil {
		b.doc.Models = make(map[string]*Model, len(models))
	}
	maps.Copy(b.doc.Models, models)
	return b
}

// BodyDescription sets the description of the Body parameter.
func (b *RouteBuilder) BodyDescription(s string) *RouteBuilder {
	b.doc.BodyDescription = s
	return b
}

// Authorizations restricts the route to callers holding one of scopes.
func (b *RouteBuilder) Authorizations(scopes string) *RouteBuilder {
	b.doc.Authorizations = scopes
	return b
}

// Doc returns the collected documentation.
func (b *RouteBuilder) Doc() *RouteDoc {
	return b.doc
}
