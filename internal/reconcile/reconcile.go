package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ops-dashboard/internal/sheet"
)

var ErrInterrupted = errors.New("reconciliation interrupted")

const (
	DefaultBatchSize        = 10
	DefaultMaxErrorMessages = 5
	DefaultSentinel         = "Total"
)

// Mapper turns a parsed row into a record. FromRow reports false for rows
// that lack a key or another required field; such rows are skipped.
type Mapper[T any] interface {
	FromRow(fields []string) (T, bool)
	Key(record T) string
}

// Store is the natural-key view of a table.
type Store[T any] interface {
	FindByKey(ctx context.Context, key string) (T, bool, error)
	Create(ctx context.Context, record T) error
	UpdateByKey(ctx context.Context, key string, record T) error
}

type Config struct {
	Name  string
	Table sheet.Table
	// KeyColumn is the field index compared against Sentinels.
	KeyColumn        int
	Sentinels        []string
	BatchSize        int
	MaxErrorMessages int
}

type Result struct {
	Source        string    `json:"source"`
	Created       int       `json:"created"`
	Updated       int       `json:"updated"`
	Skipped       int       `json:"skipped"`
	Errors        int       `json:"errors"`
	Total         int       `json:"total"`
	ErrorMessages []string  `json:"errorMessages"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
}

type Reconciler[T any] struct {
	cfg    Config
	mapper Mapper[T]
	store  Store[T]
}

func New[T any](cfg Config, mapper Mapper[T], store Store[T]) *Reconciler[T] {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxErrorMessages <= 0 {
		cfg.MaxErrorMessages = DefaultMaxErrorMessages
	}
	if cfg.Sentinels == nil {
		cfg.Sentinels = []string{DefaultSentinel}
	}
	return &Reconciler[T]{cfg: cfg, mapper: mapper, store: store}
}

func (r *Reconciler[T]) Name() string {
	return r.cfg.Name
}

type pending[T any] struct {
	line   int
	key    string
	record T
}

// Run converges the store towards the rows in text. Row failures are
// counted in the result; only cancellation between batches returns an error.
func (r *Reconciler[T]) Run(ctx context.Context, text string) (Result, error) {
	const fn = "Reconciler:Run"
	started := time.Now()
	res := Result{Source: r.cfg.Name, StartedAt: started, ErrorMessages: []string{}}

	parsed := r.cfg.Table.Parse(text)
	res.Skipped = parsed.Skipped

	rows := make([]pending[T], 0, len(parsed.Rows))
	for _, row := range parsed.Rows {
		if slices.Contains(r.cfg.Sentinels, sheet.Field(row.Fields, r.cfg.KeyColumn)) {
			slog.InfoContext(ctx, "Sentinel row reached, stopping", "source", r.cfg.Name, "line", row.Line)
			break
		}
		record, ok := r.mapper.FromRow(row.Fields)
		if !ok {
			res.Skipped++
			continue
		}
		rows = append(rows, pending[T]{line: row.Line, key: r.mapper.Key(record), record: record})
	}
	res.Total = len(rows)
	slog.InfoContext(ctx, "Rows to reconcile", "source", r.cfg.Name, "total", res.Total, "skipped", res.Skipped)

	t := &tally{max: r.cfg.MaxErrorMessages, messages: []string{}}
	var err error
	for start := 0; start < len(rows); start += r.cfg.BatchSize {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%s:%w:%w", fn, ErrInterrupted, ctxErr)
			break
		}
		end := min(start+r.cfg.BatchSize, len(rows))

		wg := sync.WaitGroup{}
		for _, p := range rows[start:end] {
			wg.Go(func() {
				r.reconcileRow(ctx, p, t)
			})
		}
		wg.Wait()
	}

	res.Created, res.Updated, res.Errors, res.ErrorMessages = t.created, t.updated, t.errors, t.messages
	res.FinishedAt = time.Now()
	observe(res, err, res.FinishedAt.Sub(started))

	slog.InfoContext(ctx, "Reconciliation complete",
		"source", r.cfg.Name,
		"created", res.Created,
		"updated", res.Updated,
		"errors", res.Errors,
		"skipped", res.Skipped,
		"total", res.Total)
	return res, err
}

func (r *Reconciler[T]) reconcileRow(ctx context.Context, p pending[T], t *tally) {
	_, found, err := r.store.FindByKey(ctx, p.key)
	if err != nil {
		t.fail(ctx, r.cfg.Name, p.line, p.key, err)
		return
	}
	if found {
		if err := r.store.UpdateByKey(ctx, p.key, p.record); err != nil {
			t.fail(ctx, r.cfg.Name, p.line, p.key, err)
			return
		}
		t.update()
		return
	}
	if err := r.store.Create(ctx, p.record); err != nil {
		t.fail(ctx, r.cfg.Name, p.line, p.key, err)
		return
	}
	t.create()
}

type tally struct {
	mu       sync.Mutex
	created  int
	updated  int
	errors   int
	max      int
	messages []string
}

func (t *tally) create() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.created++
}

func (t *tally) update() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updated++
}

func (t *tally) fail(ctx context.Context, source string, line int, key string, err error) {
	slog.ErrorContext(ctx, "Error reconciling row", "source", source, "line", line, "key", key, "error", err)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors++
	if len(t.messages) < t.max {
		t.messages = append(t.messages, fmt.Sprintf("line %d (%s): %v", line, key, err))
	}
}
