package swagger

import (
	"errors"
	"net/http"
	"sync"

	"github.com/vitalvas/swaggerdoc/mux"
)

// Registry holds the documented resources of one server. It is configured
// once with the router that serves the discovery endpoints, populated by
// LoadRoutes and read on every discovery request.
type Registry struct {
	mu sync.RWMutex

	router     *mux.Router
	cfg        Config
	logger     Logger
	configured bool

	resources []*Resource
	// defined holds method+template of every compiled operation.
	defined map[string]bool

	docs map[*mux.Route]*RouteDoc

	// mounted holds the discovery paths already registered per router.
	// Handlers look their resource up on every request, so a path is
	// mounted once and survives Reset.
	mounted map[*mux.Router]map[string]bool
}

// NewRegistry returns an unconfigured registry.
func NewRegistry() *Registry {
	return &Registry{
		logger:  NopLogger{},
		defined: make(map[string]bool),
		docs:    make(map[*mux.Route]*RouteDoc),
		mounted: make(map[*mux.Router]map[string]bool),
	}
}

// Configure installs the router and options and registers the discovery
// root endpoint (plus the optional OpenAPI and docs endpoints) on router.
func (r *Registry) Configure(router *mux.Router, cfg Config) error {
	if router == nil {
		return errors.New("swagger: configure with nil router")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.router = router
	r.cfg = cfg
	r.logger = cfg.logger()
	r.configured = true

	r.mount(cfg.discoveryURL(), r.rootHandler)
	if cfg.OpenAPIPath != "" {
		r.mount(cfg.OpenAPIPath, r.openAPIHandler)
	}
	if cfg.DocsPath != "" {
		r.mount(cfg.DocsPath, r.docsHandler)
	}

	r.logger.Info("swagger registry configured", "discovery_url", cfg.discoveryURL())
	return nil
}

// Reset drops every resource and compiled operation and returns the
// registry to the unconfigured state. Route documentation is kept, and so
// are the discovery endpoints already mounted on a router.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.router = nil
	r.cfg = Config{}
	r.logger = NopLogger{}
	r.configured = false
	r.resources = nil
	r.defined = make(map[string]bool)
}

// Route attaches documentation to a mounted route. Calling it again for
// the same route returns a builder over the same documentation.
func (r *Registry) Route(route *mux.Route) *RouteBuilder {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[route]
	if !ok {
		doc = &RouteDoc{}
		r.docs[route] = doc
	}
	return &RouteBuilder{doc: doc}
}

// FindOrCreateResource returns the resource registered under path, merging
// opts.Models into it. A new resource is appended to the registry and its
// document is served at path.
func (r *Registry) FindOrCreateResource(path string, opts *ResourceOptions) (*Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.configured {
		return nil, &NotConfiguredError{Op: "FindOrCreateResource"}
	}
	return r.findOrCreateResource(path, opts), nil
}

func (r *Registry) findOrCreateResource(path string, opts *ResourceOptions) *Resource {
	if opts == nil {
		opts = &ResourceOptions{Description: r.cfg.apiDescription(path)}
	}

	for _, res := range r.resources {
		if res.path == path {
			res.mergeModels(opts.Models)
			return res
		}
	}

	res := newResource(path, *opts)
	r.resources = append(r.resources, res)
	r.mount(path, r.resourceHandler(path))

	r.logger.Info("swagger resource created", "path", path)
	return res
}

// mount registers h for GET path on the configured router unless an
// earlier configuration already did. The caller holds the write lock.
func (r *Registry) mount(path string, h http.HandlerFunc) {
	paths := r.mounted[r.router]
	if paths == nil {
		paths = make(map[string]bool)
		r.mounted[r.router] = paths
	}
	if paths[path] {
		return
	}
	paths[path] = true
	r.router.HandleFunc(path, h).Methods(http.MethodGet)
}

// Resources returns the resources in creation order.
func (r *Registry) Resources() []*Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Resource, len(r.resources))
	copy(out, r.resources)
	return out
}

// Resource returns the resource registered under path.
func (r *Registry) Resource(path string) (*Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resources {
		if res.path == path {
			return res, true
		}
	}
	return nil, false
}

func (r *Registry) isConfigured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configured
}

// Config returns the configured options.
func (r *Registry) Config() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}
