package muxhandlers

import (
	"net/http"
	"time"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// AccessLogConfig configures AccessLogMiddleware.
type AccessLogConfig struct {
	Logger swagger.Logger

	// Now is used to time requests. Defaults to time.Now.
	Now func() time.Time
}

// AccessLogMiddleware logs one info entry per served request with the
// method, path, status, response size and duration, plus the matched route
// template. Requests answered with 5xx are logged at warn level.
func AccessLogMiddleware(cfg AccessLogConfig) mux.MiddlewareFunc {
	log := cfg.Logger
	if log == nil {
		log = swagger.NopLogger{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.statusCode(),
				"bytes", rec.written,
				"duration", now().Sub(start),
			}
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					attrs = append(attrs, "route", tpl)
				}
			}
			if id := RequestIDFromContext(r.Context()); id != "" {
				attrs = append(attrs, "request_id", id)
			}

			if rec.statusCode() >= http.StatusInternalServerError {
				log.Warn("request served", attrs...)
				return
			}
			log.Info("request served", attrs...)
		})
	}
}

// statusRecorder remembers the status code and body size written through
// it.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

func (s *statusRecorder) statusCode() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
