package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jugsite/config"
	_ "jugsite/docs"
	httpdelivery "jugsite/internal/delivery/http"
	"jugsite/internal/delivery/http/controllers"
	"jugsite/internal/domain"
	"jugsite/internal/repository/filesystem"
	"jugsite/internal/repository/postgres"
	"jugsite/internal/services"
)

// @title jugsite content API
// @version 1.0
// @description Read-only access to events, speakers, talks and sponsors.
// @BasePath /
func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	reader := services.NewContentReader(store, logger)
	handler := httpdelivery.NewHandler(logger, cfg.AllowedOrigins, controllers.NewContentController(logger, reader))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment, "source", cfg.ContentSource)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (domain.DocumentStore, func(), error) {
	if cfg.ContentSource == config.SourcePostgres {
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewDocumentRepository(db), func() { _ = db.Close() }, nil
	}
	if _, err := os.Stat(cfg.ContentDir); err != nil {
		return nil, nil, err
	}
	return filesystem.NewDocumentStore(os.DirFS(cfg.ContentDir)), func() {}, nil
}
