package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tweakd/tweakd/config"
	httpx "github.com/tweakd/tweakd/internal/http"
)

const shutdownTimeout = 10 * time.Second

// NewHTTPServer builds the control API server from the service container.
func NewHTTPServer(cfg config.HTTPConfig, services *ServiceContainer, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Login:  services.Login,
		Tweaks: services.Tweaks,
		Specs:  services.Specs,
		Logger: logger,
	})

	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:8686"
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// RunWithShutdown serves the control API until the context is cancelled or
// a termination signal arrives, then shuts down gracefully. Shutdown
// resolves any pending login attempt as cancelled so the blocked login
// request can complete before the server closes.
func RunWithShutdown(ctx context.Context, server *http.Server, services *ServiceContainer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting control API", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		if services.Login.Cancel() {
			logger.Info("pending login attempt cancelled for shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if services.Metrics != nil {
			if err := services.Metrics.Close(); err != nil {
				logger.Warn("close statsd client failed", "error", err)
			}
		}
		return nil
	})

	return g.Wait()
}
