package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestMatch(t *testing.T) {
	t.Run("unrouted request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Nil(t, Vars(r))
		assert.Nil(t, CurrentRoute(r))
		_, ok := VarGet(r, "id")
		assert.False(t, ok)
	})

	t.Run("route with vars", func(t *testing.T) {
		route := &Route{}
		r := withMatch(httptest.NewRequest(http.MethodGet, "/", nil), route, map[string]string{"id": "7"})

		assert.Equal(t, route, CurrentRoute(r))
		assert.Equal(t, map[string]string{"id": "7"}, Vars(r))

		v, ok := VarGet(r, "id")
		assert.True(t, ok)
		assert.Equal(t, "7", v)

		_, ok = VarGet(r, "missing")
		assert.False(t, ok)
	})

	t.Run("static routes share one value", func(t *testing.T) {
		route := &Route{}
		a := withMatch(httptest.NewRequest(http.MethodGet, "/", nil), route, nil)
		b := withMatch(httptest.NewRequest(http.MethodGet, "/", nil), route, nil)

		assert.Same(t, matchedFrom(a), matchedFrom(b))
		assert.Equal(t, route, CurrentRoute(b))
		assert.Nil(t, Vars(b))
	})
}

func TestMiddlewareFunc(t *testing.T) {
	called := false
	mw := MiddlewareFunc(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	})

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	w := httptest.NewRecorder()
	mw.Middleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
