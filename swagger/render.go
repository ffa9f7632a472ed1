package swagger

import "net/http"

// RenderRoot builds the discovery root document. It is not filtered by
// authorization.
func (r *Registry) RenderRoot(req *http.Request) (*ResourceListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.configured {
		return nil, &NotConfiguredError{Op: "RenderRoot"}
	}

	listing := &ResourceListing{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     r.cfg.apiVersion(),
		BasePath:       r.basePath(req),
		Info:           r.cfg.Info,
		APIs:           make([]ResourceRef, 0, len(r.resources)),
	}
	for _, res := range r.resources {
		listing.APIs = append(listing.APIs, ResourceRef{Path: res.path, Description: res.description})
	}
	return listing, nil
}

// RenderResource builds the document of res as seen by the caller of req.
//
// A path is listed when the caller holds one of the scopes required by its
// first operation; all operations of a listed path are shown. Only models
// referenced by listed operations, directly or through other models, are
// included.
func (r *Registry) RenderResource(res *Resource, req *http.Request) (*APIDeclaration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.configured {
		return nil, &NotConfiguredError{Op: "RenderResource"}
	}

	scopes := r.resolverFor(res).ResolveScopes(req)

	decl := &APIDeclaration{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     r.cfg.apiVersion(),
		BasePath:       r.basePath(req),
		Info:           r.cfg.Info,
		ResourcePath:   res.path,
		APIs:           []*API{},
	}

	var refs []string
	for _, api := range res.APIs() {
		if len(api.Operations) == 0 || !authorized(scopes, api.Operations[0].RequiredScopes) {
			continue
		}
		decl.APIs = append(decl.APIs, &API{
			Path:        api.Path,
			Description: api.Description,
			Operations:  append([]*Operation(nil), api.Operations...),
		})
		for _, op := range api.Operations {
			refs = append(refs, op.modelRefs()...)
		}
	}
	decl.Models = res.visibleModels(refs)

	return decl, nil
}

// RenderAll renders the root document and every resource document for
// the caller of req.
func (r *Registry) RenderAll(req *http.Request) (*ResourceListing, []*APIDeclaration, error) {
	listing, err := r.RenderRoot(req)
	if err != nil {
		return nil, nil, err
	}

	var decls []*APIDeclaration
	for _, res := range r.Resources() {
		decl, err := r.RenderResource(res, req)
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, decl)
	}
	return listing, decls, nil
}

func (r *Registry) basePath(req *http.Request) string {
	if r.cfg.BasePath != "" {
		return r.cfg.BasePath
	}
	return "http://" + req.Host
}

func (r *Registry) resolverFor(res *Resource) ScopeResolver {
	switch {
	case res.resolver != nil:
		return res.resolver
	case r.cfg.ScopeResolver != nil:
		return r.cfg.ScopeResolver
	default:
		return publicResolver{}
	}
}
