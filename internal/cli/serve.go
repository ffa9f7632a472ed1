package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pet store API and its discovery documents",
		Example: `  swaggerdoc serve --addr :8080
  swaggerdoc --config swaggerdoc.yaml serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cfg, err := newApp(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := overrideString(cmd.Flags(), "addr", &cfg.Server.Addr); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           a.router,
				ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			}
			return serve(ctx, a, srv, cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")

	return cmd
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, a *app, srv *http.Server, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	a.logger.Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
