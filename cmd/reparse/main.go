// Command reparse re-runs suggestion generation for artifacts whose last
// parse failed. It claims up to -limit failed artifacts, requeues each one,
// and runs the generator inline. Intended to be invoked by an operator or an
// external cron job after an intelligence provider outage.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/warmline/warmline-backend/internal/adapter/postgres"
	artifactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/artifact"
	contactrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/contact"
	suggestionrepo "github.com/warmline/warmline-backend/internal/adapter/postgres/suggestion"
	"github.com/warmline/warmline-backend/internal/adapter/provider/claude"
	"github.com/warmline/warmline-backend/internal/app"
	"github.com/warmline/warmline-backend/internal/config"
	"github.com/warmline/warmline-backend/internal/domain"
	"github.com/warmline/warmline-backend/internal/service/suggest"
)

func main() {
	limit := flag.Int("limit", 20, "maximum number of failed artifacts to reparse")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	artifacts := artifactrepo.New(pool)
	contacts := contactrepo.New(pool)
	suggestions := suggestionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)
	intel := claude.New(cfg.Intelligence, logger)

	suggestSvc := suggest.NewService(logger, artifacts, contacts, suggestions, intel, txManager, cfg.Pipeline.MaxEntries)

	failed, err := artifacts.ListFailedParse(ctx, *limit)
	if err != nil {
		logger.Error("list failed artifacts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(failed) == 0 {
		logger.Info("no failed artifacts to reparse")
		return
	}

	logger.Info("reparsing failed artifacts", slog.Int("count", len(failed)))

	var requeued, done, skipped int
	for _, a := range failed {
		err := artifacts.UpdateParsingStatus(ctx, a.ID,
			[]domain.ProcessingStatus{domain.ProcessingStatusFailed},
			domain.ProcessingStatusPending, nil,
		)
		if err != nil {
			// Someone else already moved the row; leave it alone.
			logger.Warn("requeue artifact",
				slog.String("artifact_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
			skipped++
			continue
		}
		requeued++

		runCtx, runCancel := context.WithTimeout(ctx, cfg.Pipeline.DispatchTimeout)
		err = suggestSvc.Generate(runCtx, a.ID)
		runCancel()
		if err != nil {
			logger.Error("generation failed",
				slog.String("artifact_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		done++
	}

	logger.Info("reparse complete",
		slog.Int("requeued", requeued),
		slog.Int("generated", done),
		slog.Int("skipped", skipped),
	)
}
