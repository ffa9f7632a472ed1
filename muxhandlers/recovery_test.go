package muxhandlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/swagger"
)

type logEntry struct {
	level string
	msg   string
	attrs map[string]any
}

// recordingLogger keeps every entry in memory.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	with    []any
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recordingLogger) log(level, msg string, attrs []any) {
	all := append(append([]any{}, l.with...), attrs...)
	m := make(map[string]any, len(all)/2)
	for i := 0; i+1 < len(all); i += 2 {
		m[all[i].(string)] = all[i+1]
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, attrs: m})
}

func (l *recordingLogger) Debug(msg string, attrs ...any) { l.log("debug", msg, attrs) }
func (l *recordingLogger) Info(msg string, attrs ...any)  { l.log("info", msg, attrs) }
func (l *recordingLogger) Warn(msg string, attrs ...any)  { l.log("warn", msg, attrs) }
func (l *recordingLogger) Error(msg string, attrs ...any) { l.log("error", msg, attrs) }

func (l *recordingLogger) With(attrs ...any) swagger.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, with: append(append([]any{}, l.with...), attrs...)}
}

func (l *recordingLogger) Entries() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), *l.entries...)
}

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		stack     bool
		handler   http.HandlerFunc
		wantCode  int
		wantPanic string
	}{
		{
			name:     "passes through",
			handler:  func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantCode: http.StatusNoContent,
		},
		{
			name:      "string panic",
			handler:   func(_ http.ResponseWriter, _ *http.Request) { panic("boom") },
			wantCode:  http.StatusInternalServerError,
			wantPanic: "boom",
		},
		{
			name:      "error panic with stack",
			stack:     true,
			handler:   func(_ http.ResponseWriter, _ *http.Request) { panic(assert.AnError) },
			wantCode:  http.StatusInternalServerError,
			wantPanic: assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newRecordingLogger()

			r := mux.NewRouter()
			r.HandleFunc("/pets", tt.handler).Methods(http.MethodGet)
			r.Use(
				RequestIDMiddleware(RequestIDConfig{Generate: func() string { return "req-1" }}),
				RecoveryMiddleware(RecoveryConfig{Logger: logger, Stack: tt.stack}),
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets", nil))

			assert.Equal(t, tt.wantCode, w.Code)

			entries := logger.Entries()
			if tt.wantPanic == "" {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, 1)
			assert.Equal(t, "error", entries[0].level)
			assert.Equal(t, tt.wantPanic, entries[0].attrs["panic"])
			assert.Equal(t, "req-1", entries[0].attrs["request_id"])
			assert.Equal(t, "/pets", entries[0].attrs["path"])
			if tt.stack {
				assert.Contains(t, entries[0].attrs["stack"], "goroutine")
			} else {
				assert.NotContains(t, entries[0].attrs, "stack")
			}
		})
	}
}

func TestRecoveryMiddlewareAbortHandler(t *testing.T) {
	h := RecoveryMiddleware(RecoveryConfig{})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
