package mux

import (
	"net/http"
	"path"
	"slices"
)

// cleanPath returns the canonical path for p, eliminating . and .. elements
// per RFC 3986 Section 5.2.4 (remove dot segments).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}

// allowedMethods returns the HTTP methods that match the request path
// but not the request method. Used to populate the Allow header field
// required by RFC 7231 Section 6.5.5 on 405 responses.
// The returned slice is sorted alphabetically per RFC 7231 Section 7.4.1.
func allowedMethods(router *Router, req *http.Request) []string {
	methods := []string{
		http.MethodGet, http.MethodHead, http.MethodPost,
		http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodOptions,
	}
	var allowed []string
	for _, method := range methods {
		if method == req.Method {
			continue
		}
		testReq := req.Clone(req.Context())
		testReq.Method = method
		if router.Match(testReq, &RouteMatch{}) {
			allowed = append(allowed, method)
		}
	}
	slices.Sort(allowed)
	return allowed
}

var (
	defaultNotFoundHandler = http.NotFoundHandler()

	// The Allow header is set by Router.ServeHTTP before this runs.
	defaultMethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
)
