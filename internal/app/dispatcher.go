package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type suggestionGenerator interface {
	Generate(ctx context.Context, artifactID uuid.UUID) error
}

// Dispatcher runs suggestion generation off the request path. Each parse
// signal spawns one goroutine with a bounded deadline; a timed-out run is
// marked failed by the generator itself and can be re-queued via reprocess.
type Dispatcher struct {
	generator suggestionGenerator
	timeout   time.Duration
	log       *slog.Logger
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(generator suggestionGenerator, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		generator: generator,
		timeout:   timeout,
		log:       logger.With("component", "dispatcher"),
	}
}

// NotifyParseRequested schedules a generation run for the artifact.
// It never blocks the caller.
func (d *Dispatcher) NotifyParseRequested(artifactID uuid.UUID) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.generator.Generate(ctx, artifactID); err != nil {
			d.log.Error("suggestion generation failed",
				slog.String("artifact_id", artifactID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until all in-flight generation runs finish. Called during
// graceful shutdown after the HTTP server stops accepting requests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
