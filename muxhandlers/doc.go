// Package muxhandlers provides the middleware stack of the documentation
// server.
//
// Middleware order matters: the request ID must be assigned before the
// access log and recovery middleware run so both can report it.
//
//	logger := swagger.NewSlogAdapter(slog.Default())
//
//	r := mux.NewRouter()
//	r.Use(
//	    muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}),
//	    muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{Logger: logger}),
//	    muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}),
//	)
//
// RequestIDMiddleware generates a UUID v7 per request unless the client
// sent one and TrustIncoming is set. AccessLogMiddleware writes one entry
// per request. RecoveryMiddleware converts panics into 500 responses and
// logs them.
package muxhandlers
