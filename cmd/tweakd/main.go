package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tweakd/tweakd/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting tweakd",
		"dev", cfg.IsDev,
		"http_addr", cfg.HTTP.Addr,
		"callback_addr", cfg.Auth.OAuth.CallbackAddr)

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(cfg.HTTP, services, logger)
	return bootstrap.RunWithShutdown(ctx, server, services, logger)
}
