package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ops-dashboard/internal/reconcile"
)

var (
	ErrUnknownSource       = errors.New("unknown source")
	ErrSourceNotConfigured = errors.New("source not configured")
	ErrFetch               = errors.New("error fetching source")
)

type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

type runner interface {
	Run(ctx context.Context, text string) (reconcile.Result, error)
}

type reporter interface {
	Report(ctx context.Context, res reconcile.Result, runErr error) error
}

// Job binds one inventory to its sheet and its uploaded-export layout. Source
// may be nil when no sheet is configured; imports still work.
type Job struct {
	Source Fetcher
	Sheet  runner
	Import runner
}

type Config struct {
	Jobs map[string]Job
	// Order is the sequence used by scheduled syncs.
	Order    []string
	Reporter reporter
}

type Syncer struct {
	jobs     map[string]Job
	order    []string
	reporter reporter
}

func New(cfg Config) *Syncer {
	return &Syncer{jobs: cfg.Jobs, order: cfg.Order, reporter: cfg.Reporter}
}

// Sync fetches the named sheet and reconciles it. A fetch failure aborts the
// run before any row is touched.
func (s *Syncer) Sync(ctx context.Context, name string) (reconcile.Result, error) {
	const fn = "Syncer:Sync"
	job, ok := s.jobs[name]
	if !ok {
		return reconcile.Result{}, fmt.Errorf("%s:%w: %q", fn, ErrUnknownSource, name)
	}
	if job.Source == nil {
		return reconcile.Result{}, fmt.Errorf("%s:%w: %q", fn, ErrSourceNotConfigured, name)
	}

	slog.InfoContext(ctx, "Sync started", "source", name)
	started := time.Now()
	text, err := job.Source.Fetch(ctx)
	if err != nil {
		reconcile.ObserveFetchFailure(name)
		err = fmt.Errorf("%s:%w:%w", fn, ErrFetch, err)
		slog.ErrorContext(ctx, "Sync aborted", "source", name, "error", err)
		s.report(ctx, reconcile.Result{
			Source:        name,
			ErrorMessages: []string{},
			StartedAt:     started,
			FinishedAt:    time.Now(),
		}, err)
		return reconcile.Result{}, err
	}
	return s.run(ctx, name, job.Sheet, text)
}

// Import reconciles an uploaded export of the named inventory.
func (s *Syncer) Import(ctx context.Context, name string, text string) (reconcile.Result, error) {
	const fn = "Syncer:Import"
	job, ok := s.jobs[name]
	if !ok {
		return reconcile.Result{}, fmt.Errorf("%s:%w: %q", fn, ErrUnknownSource, name)
	}
	return s.run(ctx, name, job.Import, text)
}

func (s *Syncer) run(ctx context.Context, name string, r runner, text string) (reconcile.Result, error) {
	const fn = "Syncer:run"
	res, err := r.Run(ctx, text)
	s.report(ctx, res, err)
	if err != nil {
		return res, fmt.Errorf("%s:%w", fn, err)
	}
	return res, nil
}

func (s *Syncer) report(ctx context.Context, res reconcile.Result, runErr error) {
	if s.reporter == nil {
		return
	}
	if err := s.reporter.Report(ctx, res, runErr); err != nil {
		slog.ErrorContext(ctx, "Error reporting sync", "source", res.Source, "error", err)
	}
}

// Process syncs every configured sheet in order. It is the scheduled
// worker's unit of work; one failing source does not stop the others.
func (s *Syncer) Process(ctx context.Context) error {
	var errs []error
	for _, name := range s.order {
		if s.jobs[name].Source == nil {
			continue
		}
		if _, err := s.Sync(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
