package muxhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitalvas/swaggerdoc/mux"
)

// DefaultRequestIDHeader carries the request ID when RequestIDConfig.Header
// is empty.
const DefaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the ID stored by RequestIDMiddleware, or ""
// if there is none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDConfig configures RequestIDMiddleware.
type RequestIDConfig struct {
	Header string

	// Generate returns a new ID. Defaults to a time-ordered UUID v7, so
	// access log lines of one server sort by arrival.
	Generate func() string

	// TrustIncoming reuses the ID sent by the client, if any.
	TrustIncoming bool
}

// RequestIDMiddleware tags every request with an ID. The ID is stored in
// the request context, set on the request header for downstream handlers
// and echoed in the response header.
func RequestIDMiddleware(cfg RequestIDConfig) mux.MiddlewareFunc {
	header := cfg.Header
	if header == "" {
		header = DefaultRequestIDHeader
	}
	generate := cfg.Generate
	if generate == nil {
		generate = NewRequestID
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cfg.TrustIncoming {
				id = r.Header.Get(header)
			}
			if id == "" {
				id = generate()
			}

			r.Header.Set(header, id)
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// NewRequestID returns a UUID v7 string (RFC 9562 Section 5.7). It falls
// back to a random v4 UUID if the clock cannot be read.
func NewRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
