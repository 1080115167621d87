package worker

import (
	"context"
	"log/slog"
	"time"
)

type Config struct {
	Name      string
	Interval  time.Duration
	Processor Processor
}

type Processor interface {
	Process(ctx context.Context) error
}

// Worker runs its processor once at start and then on every tick.
type Worker struct {
	name      string
	interval  time.Duration
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		interval:  cfg.Interval,
		processor: cfg.Processor,
	}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the
// worker and Run returns immediately.
func (w *Worker) Run(ctx context.Context) {
	if w.interval <= 0 {
		slog.InfoContext(ctx, "Worker disabled...", "worker", w.name)
		return
	}
	slog.InfoContext(ctx, "Worker started...", "worker", w.name, "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.process(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		case <-ticker.C:
			w.process(ctx)
		}
	}
}

func (w *Worker) process(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.processor.Process(ctx); err != nil {
		slog.ErrorContext(ctx, "Error processing", "worker", w.name, "error", err)
	}
}
