package reporter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	k "ops-dashboard/internal/kafka"
	"ops-dashboard/internal/reconcile"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshal      = errors.New("error marshalling report")
	ErrWriteMessage = errors.New("error writing message")
)

type statusCache interface {
	Set(source string, report k.SyncReport)
}

type Config struct {
	Cache  statusCache
	Writer k.Writer
}

// Reporter records the outcome of every sync. Publishing is optional; a nil
// Writer keeps reports local to the process.
type Reporter struct {
	cache  statusCache
	writer k.Writer
}

func New(cfg Config) *Reporter {
	return &Reporter{cache: cfg.Cache, writer: cfg.Writer}
}

// Report stores the outcome of a run and publishes it keyed by source.
// A publish error is returned for logging only; the run outcome stands.
func (r *Reporter) Report(ctx context.Context, res reconcile.Result, runErr error) error {
	const fn = "Reporter:Report"
	report := k.NewSyncReport(res, runErr)
	r.cache.Set(report.Source, report)

	if r.writer == nil {
		return nil
	}
	out, err := json.Marshal(k.StructuredConnectRecord{
		Schema:  k.StructuredSchema,
		Payload: report,
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshal, err)
	}
	if err := r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(report.Source), Value: out}); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.InfoContext(ctx, "Published sync report", "source", report.Source, "outcome", report.Outcome)
	return nil
}

func (r *Reporter) Close(ctx context.Context) {
	if r.writer == nil {
		return
	}
	slog.InfoContext(ctx, "Closing reporter resources...")
	if err := r.writer.Close(); err != nil {
		slog.ErrorContext(ctx, "Error closing report writer", "error", err)
	}
}
