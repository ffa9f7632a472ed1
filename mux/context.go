package mux

import (
	"context"
	"errors"
	"net/http"
)

type matchKey struct{}

// matched is what the router stores in the request context of a
// dispatched request.
type matched struct {
	route *Route
	vars  map[string]string
}

func matchedFrom(r *http.Request) *matched {
	m, _ := r.Context().Value(matchKey{}).(*matched)
	return m
}

// Vars returns the ":name" variables of the matched route, or nil.
func Vars(r *http.Request) map[string]string {
	if m := matchedFrom(r); m != nil {
		return m.vars
	}
	return nil
}

// VarGet returns one ":name" variable of the matched route.
func VarGet(r *http.Request, name string) (string, bool) {
	v, ok := Vars(r)[name]
	return v, ok
}

// CurrentRoute returns the route that matched r. Middleware registered with
// Router.Use sees it too, because the router stores it before calling the
// wrapped handler.
func CurrentRoute(r *http.Request) *Route {
	if m := matchedFrom(r); m != nil {
		return m.route
	}
	return nil
}

// withMatch returns r carrying route and vars. Routes without variables
// share one context value.
func withMatch(r *http.Request, route *Route, vars map[string]string) *http.Request {
	var m *matched
	if route != nil && len(vars) == 0 {
		route.staticOnce.Do(func() {
			route.static = &matched{route: route}
		})
		m = route.static
	} else {
		m = &matched{route: route, vars: vars}
	}
	return r.WithContext(context.WithValue(r.Context(), matchKey{}, m))
}

// RouteMatch is filled in by Router.Match and Route.Match.
type RouteMatch struct {
	Route   *Route
	Handler http.Handler
	Vars    map[string]string

	// MatchErr is ErrMethodMismatch when some route matched the path but
	// none matched the method, else ErrNotFound after a failed
	// Router.Match.
	MatchErr error
}

// MiddlewareFunc wraps the handler of every matched route. See Router.Use.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware applies mw to handler.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// WalkFunc is called by Router.Walk for every route. ancestors are the
// subrouter routes above route, outermost first.
type WalkFunc func(route *Route, router *Router, ancestors []*Route) error

var (
	// ErrMethodMismatch means the path matched but the method did not
	// (405 Method Not Allowed).
	ErrMethodMismatch = errors.New("mux: method not allowed")

	// ErrNotFound means no route matched the path (404 Not Found).
	ErrNotFound = errors.New("mux: no route matches")

	// SkipRouter returned from a WalkFunc skips the subrouter of the
	// current route.
	SkipRouter = errors.New("mux: skip router") //nolint:revive,staticcheck
)
