package swagger

import (
	"strings"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/validation"
)

const (
	paramTypePath   = "path"
	paramTypeQuery  = "query"
	paramTypeHeader = "header"
	paramTypeForm   = "form"
	paramTypeBody   = "body"

	swaggerTypeFile = "file"
	bodyParamName   = "Body"
)

// MountedRoute is what the compiler needs to know about one route.
type MountedRoute struct {
	// Method is the HTTP method, in any case.
	Method string
	// Template is the path template with ":name" variables.
	Template string
	// VarNames are the variables present in the compiled template.
	VarNames []string
	Doc      *RouteDoc
}

// LoadRoutes compiles every documented route mounted on the configured
// router. The first route that fails to compile aborts the pass.
func (r *Registry) LoadRoutes() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.configured {
		return &NotConfiguredError{Op: "LoadRoutes"}
	}

	routes, err := r.mountedRoutes()
	if err != nil {
		return err
	}
	return r.compileRoutes(routes)
}

// CompileRoutes compiles routes that do not come from the configured
// router.
func (r *Registry) CompileRoutes(routes []MountedRoute) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.configured {
		return &NotConfiguredError{Op: "CompileRoutes"}
	}
	return r.compileRoutes(routes)
}

// mountedRoutes collects one MountedRoute per method of every routable
// route. Routes are gathered before compiling because compiling mounts the
// resource endpoints.
func (r *Registry) mountedRoutes() ([]MountedRoute, error) {
	var out []MountedRoute

	err := r.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if _, isRouter := route.GetHandler().(*mux.Router); isRouter {
			return nil
		}
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		doc := r.docs[route]
		methods, err := route.GetMethods()
		if err != nil {
			if doc != nil && doc.Validation != nil {
				r.logger.Warn("documented route has no methods, skipping", "path", tpl)
			}
			return nil
		}
		vars, err := route.GetVarNames()
		if err != nil {
			return err
		}
		for _, m := range methods {
			out = append(out, MountedRoute{Method: m, Template: tpl, VarNames: vars, Doc: doc})
		}
		return nil
	})

	return out, err
}

func (r *Registry) compileRoutes(routes []MountedRoute) error {
	for _, mr := range routes {
		if err := r.compile(mr); err != nil {
			return &RouteError{Method: strings.ToUpper(mr.Method), Path: mr.Template, Err: err}
		}
	}
	return nil
}

// compile documents one route. The caller holds the write lock.
func (r *Registry) compile(mr MountedRoute) error {
	method := strings.ToUpper(mr.Method)
	log := r.logger.With("method", method, "path", mr.Template)

	doc := mr.Doc
	if doc == nil || doc.Validation == nil {
		log.Debug("route has no validation metadata, skipping")
		return nil
	}

	group := doc.DocPath
	if group == "" {
		group = resourceGroup(mr.Template)
	}
	if r.cfg.blacklisted(group) {
		log.Debug("route group is blacklisted, skipping", "group", group)
		return nil
	}

	resPath := r.cfg.resourcePath(group)
	res := r.findOrCreateResource(resPath, &ResourceOptions{
		Models:      doc.Models,
		Description: r.cfg.apiDescription(resPath),
	})

	key := method + mr.Template
	if r.defined[key] {
		log.Debug("duplicate route ignored")
		return nil
	}

	name := operationName(mr.Template)
	modelName := name
	if r.cfg.AllowMethodInModelNames {
		modelName = method + name
	}

	params := pathParameters(mr.VarNames, doc.Validation)
	body := make(map[string]any)

	for _, field := range doc.Validation.Names() {
		rule := doc.Validation[field].Merged()
		prop := compileField(field, rule)

		switch {
		case rule.Scope == validation.ScopePath:
			params = append(params, Parameter{Property: *prop, ParamType: paramTypePath})
		case rule.SwaggerType == swaggerTypeFile:
			params = append(params, Parameter{Property: *prop, ParamType: fileParamType(rule)})
		case rule.Scope == validation.ScopeBody:
			body[field] = prop
		case rule.Scope == validation.ScopeHeader:
			params = append(params, Parameter{Property: *prop, ParamType: paramTypeHeader})
		default:
			params = append(params, Parameter{Property: *prop, ParamType: paramTypeQuery})
		}
	}

	if len(body) > 0 {
		nested, err := validation.Deflatten(body)
		if err != nil {
			return err
		}
		model := &Model{ID: modelName, Properties: toProperties(nested)}
		if field, clash := res.subtypeClash(model.Properties, modelName); clash {
			return &ModelNameClashError{Model: modelName, Field: field}
		}
		if _, exists := res.models[modelName]; exists {
			log.Warn("body model replaces an existing model", "model", modelName)
		}
		res.extractSubtypes(model)
		res.models[modelName] = model

		desc := doc.BodyDescription
		if desc == "" {
			desc = doc.Summary
		}
		params = append(params, Parameter{
			Property: Property{
				Name:        bodyParamName,
				Type:        modelName,
				DataType:    modelName,
				Description: desc,
				Required:    true,
			},
			ParamType: paramTypeBody,
		})
	}

	op := &Operation{
		HTTPMethod:       method,
		Method:           method,
		Summary:          doc.Summary,
		Notes:            doc.Notes,
		Nickname:         firstNonEmpty(doc.Nickname, name),
		Parameters:       params,
		ResponseClass:    doc.ResponseClass,
		Produces:         firstNonEmptySlice(doc.Produces, r.cfg.produces()),
		Consumes:         firstNonEmptySlice(doc.Consumes, r.cfg.consumes()),
		ResponseMessages: firstNonEmptySlice(doc.ResponseMessages, r.cfg.responseMessages()),
		RequiredScopes:   requiredScopes(doc.Authorizations),
	}

	api := res.getOrCreateAPI(convertPath(mr.Template))
	api.Operations = append(api.Operations, op)
	r.defined[key] = true

	log.Debug("route documented", "resource", res.path, "parameters", len(params))
	return nil
}

// pathParameters returns a required string path parameter for every
// template variable the rules do not declare.
func pathParameters(vars []string, rules validation.Rules) []Parameter {
	params := make([]Parameter, 0, len(vars))
	for _, v := range vars {
		if rules.Has(v) {
			continue
		}
		params = append(params, Parameter{
			Property: Property{
				Name:     v,
				Type:     TypeString,
				DataType: TypeString,
				Required: true,
			},
			ParamType: paramTypePath,
		})
	}
	return params
}

// compileField builds the property shared by parameters and body models.
func compileField(name string, rule validation.FieldRule) *Property {
	typ := MapType(rule)
	p := &Property{
		Name:         name,
		Type:         typ,
		DataType:     typ,
		Description:  rule.Description,
		Required:     rule.IsRequired(),
		DefaultValue: rule.DefaultValue,
	}
	if rule.Type == TypeArray {
		p.Type = TypeArray
		p.Items = &Items{Ref: typ}
	}
	if rule.In != nil {
		p.AllowableValues = &AllowableValues{ValueType: "LIST", Values: rule.In}
	}
	return p
}

func fileParamType(rule validation.FieldRule) string {
	switch {
	case rule.SwaggerScope != "":
		return string(rule.SwaggerScope)
	case rule.Scope != "":
		return string(rule.Scope)
	default:
		return paramTypeForm
	}
}

// toProperties converts a deflattened body into properties. Nested maps
// become placeholders.
func toProperties(nested map[string]any) map[string]*Property {
	out := make(map[string]*Property, len(nested))
	for k, v := range nested {
		switch v := v.(type) {
		case *Property:
			out[k] = v
		case map[string]any:
			out[k] = &Property{nested: toProperties(v)}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptySlice[T any](primary, fallback []T) []T {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}
