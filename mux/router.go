package mux

import (
	"net/http"
	"slices"
	"strings"
	"sync"
)

// Router dispatches requests to the first route whose path template and
// methods match.
//
//	r := mux.NewRouter()
//	r.HandleFunc("/pets/:id", getPet).Methods(http.MethodGet)
//	http.ListenAndServe(":8080", r)
//
// Routes are registered before serving. A path that matches some route but
// none of its methods gets 405 with an Allow header (RFC 9110 Section
// 15.5.6), any other miss gets 404.
type Router struct {
	// NotFoundHandler replaces the default 404 handler.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler replaces the default 405 handler. The Allow
	// header is already set when it runs.
	MethodNotAllowedHandler http.Handler

	parent      parentRoute
	routes      []*Route
	middlewares []MiddlewareFunc

	// wrapped caches the middleware chain per route.
	wrapped sync.Map // map[*Route]http.Handler
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
		u := *req.URL
		u.Path = cleaned
		u.RawPath = ""
		req = req.Clone(req.Context())
		req.URL = &u
	}

	var match RouteMatch
	handler := r.NotFoundHandler

	switch {
	case r.Match(req, &match):
		handler = match.Handler
		req = withMatch(req, match.Route, match.Vars)
	case match.MatchErr == ErrMethodMismatch:
		w.Header().Set("Allow", strings.Join(allowedMethods(r, req), ", "))
		handler = r.MethodNotAllowedHandler
		if handler == nil {
			handler = defaultMethodNotAllowedHandler
		}
	}
	if handler == nil {
		handler = defaultNotFoundHandler
	}

	handler.ServeHTTP(w, req)
}

// Match finds the route for req, descending into subrouters. On a miss
// match.MatchErr is ErrMethodMismatch or ErrNotFound.
func (r *Router) Match(req *http.Request, match *RouteMatch) bool {
	var wrongMethod bool
	for _, route := range r.routes {
		if route.Match(req, match) {
			if match.Handler != nil && len(r.middlewares) > 0 {
				match.Handler = r.chain(match.Route, match.Handler)
			}
			return true
		}
		if match.MatchErr == ErrMethodMismatch {
			wrongMethod = true
		}
	}

	if wrongMethod {
		match.MatchErr = ErrMethodMismatch
	} else {
		match.MatchErr = ErrNotFound
	}
	return false
}

// NewRoute appends an empty route.
func (r *Router) NewRoute() *Route {
	route := &Route{parent: r}
	r.routes = append(r.routes, route)
	return route
}

// Handle registers handler for the path template tpl.
func (r *Router) Handle(tpl string, handler http.Handler) *Route {
	return r.NewRoute().Path(tpl).Handler(handler)
}

// HandleFunc registers f for the path template tpl.
func (r *Router) HandleFunc(tpl string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.NewRoute().Path(tpl).HandlerFunc(f)
}

// Path appends a route matching the path template tpl.
func (r *Router) Path(tpl string) *Route {
	return r.NewRoute().Path(tpl)
}

// PathPrefix appends a route matching paths that start with tpl. It is
// usually followed by Subrouter.
func (r *Router) PathPrefix(tpl string) *Route {
	return r.NewRoute().PathPrefix(tpl)
}

// Use appends middleware. It wraps the handlers of matched routes only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}

// Walk calls walkFn for every route in registration order, visiting the
// routes of a subrouter right after the route that owns it. Returning
// SkipRouter skips that subrouter; any other error stops the walk.
func (r *Router) Walk(walkFn WalkFunc) error {
	return r.walk(walkFn, nil)
}

func (r *Router) walk(walkFn WalkFunc, ancestors []*Route) error {
	// Routes appended by walkFn are not visited.
	routes := r.routes
	for _, route := range routes {
		err := walkFn(route, r, ancestors)
		if err == SkipRouter {
			continue
		}
		if err != nil {
			return err
		}
		if sub, ok := route.handler.(*Router); ok {
			if err := sub.walk(walkFn, slices.Concat(ancestors, []*Route{route})); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) getPathTemplate() string {
	if r.parent != nil {
		return r.parent.getPathTemplate()
	}
	return ""
}

// chain returns h wrapped in the router's middleware, first registered
// outermost.
func (r *Router) chain(route *Route, h http.Handler) http.Handler {
	if cached, ok := r.wrapped.Load(route); ok {
		return cached.(http.Handler)
	}
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i].Middleware(h)
	}
	r.wrapped.Store(route, h)
	return h
}
