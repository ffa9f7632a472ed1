package muxhandlers

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// RecoveryConfig configures RecoveryMiddleware.
type RecoveryConfig struct {
	// Logger receives one error entry per recovered panic. Nil discards.
	Logger swagger.Logger

	// Stack adds the goroutine stack to the log entry.
	Stack bool
}

// RecoveryMiddleware turns a panicking handler into a 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the
// connection as usual.
func RecoveryMiddleware(cfg RecoveryConfig) mux.MiddlewareFunc {
	log := cfg.Logger
	if log == nil {
		log = swagger.NopLogger{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"panic", fmt.Sprint(rec),
				}
				if id := RequestIDFromContext(r.Context()); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				if cfg.Stack {
					attrs = append(attrs, "stack", string(debug.Stack()))
				}
				log.Error("handler panicked", attrs...)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
