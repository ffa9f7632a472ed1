package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRequest(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouterServeHTTP(t *testing.T) {
	t.Run("dispatches to matched handler", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/hello", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "world")
		})

		w := serveRequest(r, http.MethodGet, "/hello")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "world", w.Body.String())
	})

	t.Run("sets vars and current route", func(t *testing.T) {
		r := NewRouter()
		var route *Route
		route = r.HandleFunc("/pets/:id", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, route, CurrentRoute(req))
			fmt.Fprint(w, Vars(req)["id"])
		})

		w := serveRequest(r, http.MethodGet, "/pets/abc")
		assert.Equal(t, "abc", w.Body.String())
	})

	t.Run("cleans dot segments", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/a/b", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "ok")
		})

		w := serveRequest(r, http.MethodGet, "/a/x/../b")
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("404 for unmatched path", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/hello", func(_ http.ResponseWriter, _ *http.Request) {})

		assert.Equal(t, http.StatusNotFound, serveRequest(r, http.MethodGet, "/nope").Code)
	})

	t.Run("custom NotFoundHandler", func(t *testing.T) {
		r := NewRouter()
		r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		assert.Equal(t, http.StatusTeapot, serveRequest(r, http.MethodGet, "/nope").Code)
	})

	t.Run("405 with sorted Allow header", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/pets", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)
		r.HandleFunc("/pets", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodDelete)

		w := serveRequest(r, http.MethodGet, "/pets")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "DELETE, POST", w.Header().Get("Allow"))
	})

	t.Run("custom MethodNotAllowedHandler", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/pets", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodPost)
		r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		w := serveRequest(r, http.MethodGet, "/pets")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "POST", w.Header().Get("Allow"))
	})

	t.Run("subrouter routes", func(t *testing.T) {
		r := NewRouter()
		api := r.PathPrefix("/api").Subrouter()
		api.HandleFunc("/pets/:id", func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprint(w, Vars(req)["id"])
		}).Methods(http.MethodGet)

		assert.Equal(t, "5", serveRequest(r, http.MethodGet, "/api/pets/5").Body.String())
		assert.Equal(t, http.StatusMethodNotAllowed, serveRequest(r, http.MethodPut, "/api/pets/5").Code)
		assert.Equal(t, http.StatusNotFound, serveRequest(r, http.MethodGet, "/api/other").Code)
	})
}

func TestRouterMatch(t *testing.T) {
	r := NewRouter()
	r.HandleFunc("/a", func(_ http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodGet)

	var match RouteMatch
	assert.False(t, r.Match(httptest.NewRequest(http.MethodGet, "/b", nil), &match))
	assert.Equal(t, ErrNotFound, match.MatchErr)

	match = RouteMatch{}
	assert.False(t, r.Match(httptest.NewRequest(http.MethodPost, "/a", nil), &match))
	assert.Equal(t, ErrMethodMismatch, match.MatchErr)
}

func TestRouterWalk(t *testing.T) {
	r := NewRouter()
	r.Path("/a").Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.Path("/b").Methods(http.MethodPost)
	api.Path("/c/:id").Methods(http.MethodPut)

	t.Run("visits every route", func(t *testing.T) {
		var templates []string
		var depths []int
		err := r.Walk(func(route *Route, _ *Router, ancestors []*Route) error {
			tpl, _ := route.GetPathTemplate()
			templates = append(templates, tpl)
			depths = append(depths, len(ancestors))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/api", "/api/b", "/api/c/:id"}, templates)
		assert.Equal(t, []int{0, 0, 1, 1}, depths)
	})

	t.Run("SkipRouter skips subrouter", func(t *testing.T) {
		var count int
		err := r.Walk(func(route *Route, _ *Router, _ []*Route) error {
			count++
			if _, ok := route.GetHandler().(*Router); ok {
				return SkipRouter
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("error stops walk", func(t *testing.T) {
		sentinel := errors.New("stop")
		err := r.Walk(func(route *Route, _ *Router, _ []*Route) error {
			if tpl, _ := route.GetPathTemplate(); tpl == "/api/b" {
				return sentinel
			}
			return nil
		})
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("retained ancestors are not overwritten", func(t *testing.T) {
		r := NewRouter()
		x := r.PathPrefix("/a").Subrouter().
			PathPrefix("/b").Subrouter().
			PathPrefix("/x").Subrouter()
		x.PathPrefix("/one").Subrouter().Path("/r")
		x.PathPrefix("/two").Subrouter().Path("/r")

		kept := map[string][]*Route{}
		require.NoError(t, r.Walk(func(route *Route, _ *Router, ancestors []*Route) error {
			if _, ok := route.GetHandler().(*Router); !ok {
				tpl, _ := route.GetPathTemplate()
				kept[tpl] = ancestors
			}
			return nil
		}))

		for tpl, want := range map[string]string{"/a/b/x/one/r": "/a/b/x/one", "/a/b/x/two/r": "/a/b/x/two"} {
			ancestors := kept[tpl]
			require.Len(t, ancestors, 4, tpl)
			parent, _ := ancestors[3].GetPathTemplate()
			assert.Equal(t, want, parent, tpl)
		}
	})

	t.Run("routes added during walk are not visited", func(t *testing.T) {
		r := NewRouter()
		r.Path("/a")
		var count int
		err := r.Walk(func(_ *Route, router *Router, _ []*Route) error {
			count++
			router.Path("/added")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRouterUse(t *testing.T) {
	r := NewRouter()
	var order []string
	mw := func(name string) MiddlewareFunc {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}
	r.Use(mw("outer"), mw("inner"))
	api := r.PathPrefix("/api").Subrouter()
	api.Use(mw("sub"))
	api.HandleFunc("/x", func(_ http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	})

	serveRequest(r, http.MethodGet, "/api/x")
	assert.Equal(t, []string{"outer", "inner", "sub", "handler"}, order)

	order = nil
	serveRequest(r, http.MethodGet, "/api/x")
	assert.Equal(t, []string{"outer", "inner", "sub", "handler"}, order)

	order = nil
	serveRequest(r, http.MethodGet, "/missing")
	assert.Empty(t, order)
}
