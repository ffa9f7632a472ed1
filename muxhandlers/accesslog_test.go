package muxhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/swaggerdoc/mux"
)

func TestAccessLogMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantLevel  string
		wantStatus int
		wantBytes  int
	}{
		{
			name:       "implicit ok",
			handler:    func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hello")) },
			wantLevel:  "info",
			wantStatus: http.StatusOK,
			wantBytes:  5,
		},
		{
			name:       "no body",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			wantLevel:  "info",
			wantStatus: http.StatusOK,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
			},
			wantLevel:  "warn",
			wantStatus: http.StatusServiceUnavailable,
			wantBytes:  len("unavailable\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newRecordingLogger()
			clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			now := func() time.Time {
				clock = clock.Add(25 * time.Millisecond)
				return clock
			}

			r := mux.NewRouter()
			r.HandleFunc("/swagger/:resource", tt.handler).Methods(http.MethodGet)
			r.Use(
				RequestIDMiddleware(RequestIDConfig{Generate: func() string { return "req-7" }}),
				AccessLogMiddleware(AccessLogConfig{Logger: logger, Now: now}),
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/pets", nil))
			assert.Equal(t, tt.wantStatus, w.Code)

			entries := logger.Entries()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, tt.wantLevel, e.level)
			assert.Equal(t, "request served", e.msg)
			assert.Equal(t, http.MethodGet, e.attrs["method"])
			assert.Equal(t, "/swagger/pets", e.attrs["path"])
			assert.Equal(t, "/swagger/:resource", e.attrs["route"])
			assert.Equal(t, tt.wantStatus, e.attrs["status"])
			assert.Equal(t, tt.wantBytes, e.attrs["bytes"])
			assert.Equal(t, 25*time.Millisecond, e.attrs["duration"])
			assert.Equal(t, "req-7", e.attrs["request_id"])
		})
	}
}

func TestAccessLogWithoutRoute(t *testing.T) {
	logger := newRecordingLogger()
	h := AccessLogMiddleware(AccessLogConfig{Logger: logger})(http.NotFoundHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].attrs, "route")
	assert.Equal(t, http.StatusNotFound, entries[0].attrs["status"])
}

func TestStatusRecorderFirstStatusWins(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	rec.WriteHeader(http.StatusAccepted)
	rec.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusAccepted, rec.statusCode())
	assert.NotNil(t, rec.Unwrap())
}
