package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/warmline/warmline-backend/internal/adapter/postgres"
	artifactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/artifact"
	contactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/contact"
	suggestionrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/suggestion"
	"github.com/warmline/warmline-backend/internal/adapter/provider/claude"
	"github.com/warmline/warmline-backend/internal/auth"
	"github.com/warmline/warmline-backend/internal/config"
	"github.com/warmline/warmline-backend/internal/service/pipeline"
	"github.com/warmline/warmline-backend/internal/service/suggest"
	"github.com/warmline/warmline-backend/internal/transport/middleware"
	"github.com/warmline/warmline-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repositories, services, and HTTP transport together, and serves until the
// context is cancelled. Shutdown drains the HTTP server first and then waits
// for in-flight suggestion generation to finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	artifacts := artifactrepo.New(pool)
	contacts := contactrepo.New(pool)
	suggestions := suggestionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	intel := claude.New(cfg.Intelligence, logger)

	suggestSvc := suggest.NewService(logger, artifacts, contacts, suggestions, intel, txManager, cfg.Pipeline.MaxEntries)

	dispatcher := NewDispatcher(suggestSvc, cfg.Pipeline.DispatchTimeout, logger)

	pipelineSvc := pipeline.NewService(logger, artifacts, contacts, suggestions, dispatcher)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Auth:        middleware.Auth(jwtManager),
		WebhookAuth: middleware.WebhookAuth(cfg.Auth.WebhookSecret),
		Artifacts:   rest.NewArtifactHandler(pipelineSvc, logger),
		Suggestions: rest.NewSuggestionHandler(suggestSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}

	dispatcher.Wait()

	logger.Info("shutdown complete")
	return nil
}
