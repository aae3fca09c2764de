package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/uslugi-market/api/internal/handlers"
	"github.com/uslugi-market/api/internal/platform/config"
	"github.com/uslugi-market/api/internal/platform/observability"
	"github.com/uslugi-market/api/internal/seo"
	"github.com/uslugi-market/api/internal/services"
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")

	cfg, err := config.Load()
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	builder := seo.NewBuilder(cfg.Site.BaseURL)
	metaService, err := services.NewPageMetaService(services.PageMetaServiceDeps{
		Builder:      builder,
		SiteName:     cfg.Site.Name,
		Language:     cfg.Site.Language,
		DefaultImage: cfg.Site.DefaultImage,
		Logger:       observability.EventLogger(logger.Named("page_meta")),
	})
	if err != nil {
		logger.Fatal("failed to initialise page meta service", zap.Error(err))
	}

	metaHandlers := handlers.NewMetaHandlers(metaService)
	router := handlers.NewRouter(
		handlers.WithMiddlewares(handlers.LoggerMiddleware(logger.Named("http"))),
		handlers.WithMetaRoutes(metaHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr), zap.String("site", cfg.Site.BaseURL))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
