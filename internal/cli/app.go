package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vitalvas/swaggerdoc/internal/config"
	"github.com/vitalvas/swaggerdoc/internal/petstore"
	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/muxhandlers"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// app is the wired documentation server.
type app struct {
	router   *mux.Router
	registry *swagger.Registry
	logger   *slog.Logger
}

func buildApp(cfg *config.File, logOut io.Writer) (*app, error) {
	logger, err := cfg.Logger(logOut)
	if err != nil {
		return nil, err
	}
	log := swagger.NewSlogAdapter(logger)

	r := mux.NewRouter()
	r.Use(
		muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}),
		muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{Logger: log}),
		muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: log}),
		mux.CORSMethodMiddleware(r),
	)

	reg := swagger.NewRegistry()
	if err := reg.Configure(r, cfg.SwaggerConfig(log)); err != nil {
		return nil, err
	}

	petstore.Register(reg, r, petstore.NewStore())
	if err := reg.LoadRoutes(); err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	return &app{router: r, registry: reg, logger: logger}, nil
}
