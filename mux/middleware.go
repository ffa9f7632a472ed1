package mux

import (
	"net/http"
	"slices"
	"strings"
)

// CORSMethodMiddleware sets the Access-Control-Allow-Methods response header
// (Fetch Standard, CORS protocol) to every method registered on r for the
// request path.
func CORSMethodMiddleware(r *Router) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if methods := methodsForPath(r, req); len(methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
			}
			next.ServeHTTP(w, req)
		})
	}
}

// methodsForPath returns the sorted, de-duplicated methods of every route
// whose path matches req, descending into subrouters.
func methodsForPath(router *Router, req *http.Request) []string {
	var out []string

	_ = router.Walk(func(route *Route, _ *Router, _ []*Route) error {
		if route.path == nil || !route.path.matches(req.URL.Path) {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
		return nil
	})

	slices.Sort(out)
	return out
}
