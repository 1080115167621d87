package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	k "ops-dashboard/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage       = errors.New("error reading message")
	ErrParseMessage      = errors.New("error parsing message")
	ErrBrokerUnreachable = errors.New("broker unreachable")
)

const readTimeout = 5 * time.Second

type Config struct {
	Brokers       []string
	ConsumerTopic string
}

// StatusCache keeps the last sync report per source. It is hydrated from
// the compacted report topic so a restart keeps showing the last outcome.
type StatusCache struct {
	mu      sync.RWMutex
	brokers []string
	store   map[string]k.SyncReport
	reader  k.Reader
}

// New returns a cache without a report topic; Hydrate is a no-op.
func New() *StatusCache {
	return &StatusCache{store: make(map[string]k.SyncReport)}
}

func NewWithTopic(cfg Config) *StatusCache {
	c := New()
	c.brokers = cfg.Brokers
	c.reader = k.NewCompactedReader(k.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.ConsumerTopic,
	})
	return c
}

func (c *StatusCache) Get(source string) (k.SyncReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	report, exists := c.store[source]
	return report, exists
}

func (c *StatusCache) Set(source string, report k.SyncReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[source] = report
}

func (c *StatusCache) Snapshot() map[string]k.SyncReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.store)
}

func (c *StatusCache) waitForBroker(ctx context.Context, maxWait time.Duration, interval time.Duration) error {
	deadline := time.Now().Add(maxWait)
	for time.Now().Before(deadline) {
		dialCtx, cancel := context.WithTimeout(ctx, interval)
		conn, err := kafka.DialContext(dialCtx, "tcp", c.brokers[0])
		cancel()
		if err == nil {
			conn.Close()
			slog.InfoContext(ctx, "Broker is ready", "broker", c.brokers[0])
			return nil
		}
		slog.InfoContext(ctx, "Broker not ready", "broker", c.brokers[0], "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("%w after %s", ErrBrokerUnreachable, maxWait)
}

// Hydrate replays the report topic until it is drained. Blocking operation.
func (c *StatusCache) Hydrate(ctx context.Context) error {
	const fn = "StatusCache:Hydrate"
	if c.reader == nil || len(c.brokers) == 0 {
		return nil
	}
	defer c.reader.Close()

	slog.InfoContext(ctx, "Pinging broker to ensure connectivity...")
	if err := c.waitForBroker(ctx, 30*time.Second, 5*time.Second); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}

	slog.InfoContext(ctx, "Starting cache hydration...")
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Cache hydrate stopped...")
			return nil
		default:
		}
		done, err := c.ReadMessage(ctx)
		if errors.Is(err, ErrParseMessage) {
			slog.ErrorContext(ctx, "Skipping unparsable report", "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s:%w", fn, err)
		}
		if done {
			slog.InfoContext(ctx, "Cache hydration complete", "sources", len(c.Snapshot()))
			return nil
		}
	}
}

// ReadMessage applies one report from the topic. done reports that the topic
// is drained, either because lag reached zero or the read timed out.
func (c *StatusCache) ReadMessage(ctx context.Context) (bool, error) {
	const fn = "StatusCache:ReadMessage"
	readCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	m, err := c.reader.ReadMessage(readCtx)
	if errors.Is(err, context.DeadlineExceeded) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var record k.StructuredConnectRecord
	if err := json.Unmarshal(m.Value, &record); err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrParseMessage, err)
	}
	source := record.Payload.Source
	if source == "" {
		source = string(m.Key)
	}
	c.Set(source, record.Payload)

	return c.reader.Lag() == 0, nil
}
