package mux

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"sync"
)

// parentRoute is a Router or, for routes of a subrouter, the Route that
// owns it.
type parentRoute interface {
	getPathTemplate() string
}

// Route is one entry of a Router: a path template, optional methods and a
// handler. A route whose handler is a *Router delegates matching to it.
type Route struct {
	parent  parentRoute
	handler http.Handler
	path    *routeTemplate
	methods []string
	err     error

	static     *matched
	staticOnce sync.Once
}

// Match reports whether req matches the route and fills in match. A
// request that matches the path but not the methods sets
// match.MatchErr to ErrMethodMismatch.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}
	if r.path != nil && !r.path.matches(req.URL.Path) {
		return false
	}
	if len(r.methods) > 0 && !slices.Contains(r.methods, req.Method) {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	if sub, ok := r.handler.(*Router); ok {
		return sub.Match(req, match)
	}

	match.Route = r
	match.Handler = r.handler
	if r.path != nil && len(r.path.varsN) > 0 {
		if match.Vars == nil {
			match.Vars = make(map[string]string, len(r.path.varsN))
		}
		r.path.setVars(req.URL.Path, match.Vars)
	}
	return true
}

// Handler sets the handler of the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets the handler of the route to f.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler of the route, which is a *Router for
// subrouter routes.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Path matches the whole request path against tpl. Variables are written
// ":name" and run to the next slash. Inside a subrouter tpl is appended to
// the template of the owning route.
func (r *Route) Path(tpl string) *Route {
	r.setPath(tpl, false)
	return r
}

// PathPrefix matches request paths starting with tpl.
func (r *Route) PathPrefix(tpl string) *Route {
	r.setPath(tpl, true)
	return r
}

func (r *Route) setPath(tpl string, prefix bool) {
	if r.err != nil {
		return
	}
	if parentTpl := r.parent.getPathTemplate(); parentTpl != "" {
		tpl = strings.TrimRight(parentTpl, "/") + tpl
	}
	r.path, r.err = newRouteTemplate(tpl, prefix)
}

// Methods restricts the route to the given methods, compared upper-cased.
// A later call replaces the earlier set.
func (r *Route) Methods(methods ...string) *Route {
	r.methods = make([]string, len(methods))
	for i, m := range methods {
		r.methods[i] = strings.ToUpper(m)
	}
	return r
}

// Subrouter returns a Router whose routes are matched below this route's
// path template.
func (r *Route) Subrouter() *Router {
	sub := &Router{parent: r}
	r.handler = sub
	return sub
}

// GetPathTemplate returns the full path template, including the
// templates of enclosing subrouter routes.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.path == nil {
		return "", errors.New("mux: route has no path")
	}
	return r.path.template, nil
}

// GetMethods returns the methods the route is restricted to.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.methods) == 0 {
		return nil, errors.New("mux: route has no methods")
	}
	return slices.Clone(r.methods), nil
}

// GetVarNames returns the ":name" variables of the path template in order.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.path == nil {
		return nil, nil
	}
	return slices.Clone(r.path.varsN), nil
}

// GetError returns the error recorded while building the route.
func (r *Route) GetError() error {
	return r.err
}

func (r *Route) getPathTemplate() string {
	if r.path == nil {
		return ""
	}
	return r.path.template
}
