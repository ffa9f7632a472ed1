package swagger

import (
	"net/http"
	"strings"
)

// ScopePublic is granted to every caller and required by operations that
// declare no authorizations.
const ScopePublic = "public"

// APIKeyParam is the query parameter or header carrying the caller
// credential.
const APIKeyParam = "api_key"

// ScopeResolver resolves the authorization scopes of a discovery request.
type ScopeResolver interface {
	ResolveScopes(r *http.Request) []string
}

// AccessControlFunc returns the caller's scopes as a space or comma
// separated string. It only runs when the request carries an api_key.
type AccessControlFunc func(r *http.Request) string

// ResolveScopes implements ScopeResolver. Callers without a credential, or
// for whom f returns no scopes, get the public scope.
func (f AccessControlFunc) ResolveScopes(r *http.Request) []string {
	if f == nil || credential(r) == "" {
		return publicScopes()
	}
	scopes := parseScopes(f(r))
	if len(scopes) == 0 {
		return publicScopes()
	}
	return scopes
}

type publicResolver struct{}

func (publicResolver) ResolveScopes(_ *http.Request) []string {
	return publicScopes()
}

func publicScopes() []string {
	return []string{ScopePublic}
}

// credential returns the api_key query parameter, or the api_key header.
func credential(r *http.Request) string {
	if key := r.URL.Query().Get(APIKeyParam); key != "" {
		return key
	}
	return r.Header.Get(APIKeyParam)
}

// parseScopes lower-cases s and splits it on commas and whitespace.
func parseScopes(s string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(s, ",", " ")))
}

// requiredScopes parses a route's declared authorizations. A route without
// any is public.
func requiredScopes(declared string) []string {
	scopes := parseScopes(declared)
	if len(scopes) == 0 {
		return publicScopes()
	}
	return scopes
}

// authorized reports whether the caller holds at least one required scope.
func authorized(caller, required []string) bool {
	for _, req := range required {
		for _, have := range caller {
			if req == have {
				return true
			}
		}
	}
	return false
}
