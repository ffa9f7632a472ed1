package swagger

// SwaggerVersion is the document format version emitted in every response.
const SwaggerVersion = "1.2"

// Info is the free-text API information block of a discovery document.
type Info struct {
	Title             string `json:"title,omitempty" yaml:"title,omitempty"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfServiceURL string `json:"termsOfServiceUrl,omitempty" yaml:"termsOfServiceUrl,omitempty"`
	Contact           string `json:"contact,omitempty" yaml:"contact,omitempty"`
	License           string `json:"license,omitempty" yaml:"license,omitempty"`
	LicenseURL        string `json:"licenseUrl,omitempty" yaml:"licenseUrl,omitempty"`
}

// AllowableValues restricts a property to a fixed list.
type AllowableValues struct {
	ValueType string `json:"valueType" yaml:"valueType"`
	Values    []any  `json:"values" yaml:"values"`
}

// Items references the element type of an array property.
type Items struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

// Property describes one model property. A property compiled from a nested
// body field starts out as a placeholder holding its sub-properties and is
// replaced by a reference when its subtype is extracted.
type Property struct {
	Name            string           `json:"name,omitempty" yaml:"name,omitempty"`
	Type            string           `json:"type,omitempty" yaml:"type,omitempty"`
	DataType        string           `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	Description     string           `json:"description,omitempty" yaml:"description,omitempty"`
	Required        bool             `json:"required,omitempty" yaml:"required,omitempty"`
	AllowableValues *AllowableValues `json:"allowableValues,omitempty" yaml:"allowableValues,omitempty"`
	DefaultValue    any              `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Items           *Items           `json:"items,omitempty" yaml:"items,omitempty"`

	nested map[string]*Property
}

// IsPlaceholder reports whether p is an inline object awaiting extraction.
func (p *Property) IsPlaceholder() bool {
	return p.nested != nil
}

// Model is a named schema for a request or response body.
type Model struct {
	ID         string               `json:"id,omitempty" yaml:"id,omitempty"`
	Properties map[string]*Property `json:"properties" yaml:"properties"`
}

// references returns the model names p points at.
func (p *Property) references() []string {
	var refs []string
	if p.Type != "" {
		refs = append(refs, p.Type)
	}
	if p.Items != nil && p.Items.Ref != "" {
		refs = append(refs, p.Items.Ref)
	}
	return refs
}

// Parameter is one operation parameter. ParamType is path, query, header,
// form or body.
type Parameter struct {
	Property  `yaml:",inline"`
	ParamType string `json:"paramType" yaml:"paramType"`
}

// ResponseMessage documents one non-default response of an operation.
type ResponseMessage struct {
	Code          int    `json:"code" yaml:"code"`
	Message       string `json:"message" yaml:"message"`
	ResponseModel string `json:"responseModel,omitempty" yaml:"responseModel,omitempty"`
}

// Operation is one documented (method, path) pair. Operations are not
// modified after they are appended to an API.
type Operation struct {
	HTTPMethod       string            `json:"httpMethod" yaml:"httpMethod"`
	Method           string            `json:"method" yaml:"method"`
	Summary          string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Notes            string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Nickname         string            `json:"nickname" yaml:"nickname"`
	Parameters       []Parameter       `json:"parameters" yaml:"parameters"`
	ResponseClass    string            `json:"responseClass,omitempty" yaml:"responseClass,omitempty"`
	Produces         []string          `json:"produces" yaml:"produces"`
	Consumes         []string          `json:"consumes" yaml:"consumes"`
	ResponseMessages []ResponseMessage `json:"responseMessages" yaml:"responseMessages"`

	// RequiredScopes lists the authorization scopes that grant access.
	// It is used for filtering and never rendered.
	RequiredScopes []string `json:"-" yaml:"-"`
}

// modelRefs returns the model names this operation mentions directly.
func (o *Operation) modelRefs() []string {
	var refs []string
	for _, p := range o.Parameters {
		if p.ParamType == paramTypeBody && p.DataType != "" {
			refs = append(refs, p.DataType)
		}
	}
	if o.ResponseClass != "" {
		refs = append(refs, o.ResponseClass)
	}
	for _, m := range o.ResponseMessages {
		if m.ResponseModel != "" {
			refs = append(refs, m.ResponseModel)
		}
	}
	return refs
}

// API is a documented path and its operations. Path uses {name} variables.
type API struct {
	Path        string       `json:"path" yaml:"path"`
	Description string       `json:"description" yaml:"description"`
	Operations  []*Operation `json:"operations" yaml:"operations"`
}

// ResourceRef is one entry of the discovery root document.
type ResourceRef struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

// ResourceListing is the discovery root document.
type ResourceListing struct {
	SwaggerVersion string        `json:"swaggerVersion" yaml:"swaggerVersion"`
	APIVersion     string        `json:"apiVersion" yaml:"apiVersion"`
	BasePath       string        `json:"basePath" yaml:"basePath"`
	Info           *Info         `json:"info,omitempty" yaml:"info,omitempty"`
	APIs           []ResourceRef `json:"apis" yaml:"apis"`
}

// APIDeclaration is the document served for one resource.
type APIDeclaration struct {
	SwaggerVersion string            `json:"swaggerVersion" yaml:"swaggerVersion"`
	APIVersion     string            `json:"apiVersion" yaml:"apiVersion"`
	BasePath       string            `json:"basePath" yaml:"basePath"`
	Info           *Info             `json:"info,omitempty" yaml:"info,omitempty"`
	ResourcePath   string            `json:"resourcePath" yaml:"resourcePath"`
	APIs           []*API            `json:"apis" yaml:"apis"`
	Models         map[string]*Model `json:"models" yaml:"models"`
}
