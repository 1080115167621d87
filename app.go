package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"ops-dashboard/internal/cache"
	"ops-dashboard/internal/config"
	"ops-dashboard/internal/db"
	"ops-dashboard/internal/inventory"
	k "ops-dashboard/internal/kafka"
	"ops-dashboard/internal/reporter"
	"ops-dashboard/internal/sheet"
	"ops-dashboard/internal/syncer"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg      config.Config
	db       *db.DB
	status   *cache.StatusCache
	reporter *reporter.Reporter
	syncer   *syncer.Syncer
}

func setupLogger(w io.Writer, level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l})))
}

func newApp(ctx context.Context, cfg config.Config, skipMigrations bool) (*app, error) {
	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DB.ConnString,
		MigrationsPath: cfg.DB.MigrationsPath,
		SkipMigrations: skipMigrations,
	})
	if err != nil {
		return nil, withCode(exitDB, err)
	}

	status := cache.New()
	var writer k.Writer
	if cfg.Kafka.Enabled() {
		status = cache.NewWithTopic(cache.Config{
			Brokers:       cfg.Kafka.Brokers,
			ConsumerTopic: cfg.Kafka.ReportTopic,
		})
		writer = k.NewWriter(k.WriterConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ReportTopic,
		})
	}
	rep := reporter.New(reporter.Config{Cache: status, Writer: writer})

	opts := inventory.Options{
		BatchSize:        cfg.Sync.BatchSize,
		MaxErrorMessages: cfg.Sync.MaxErrorMessages,
	}
	s := syncer.New(syncer.Config{
		Jobs: map[string]syncer.Job{
			inventory.DevicesSource: {
				Source: newSource(cfg.Sync, cfg.Sync.Devices),
				Sheet:  inventory.NewDeviceReconciler(inventory.DeviceSheetTable(), opts, database),
				Import: inventory.NewDeviceReconciler(inventory.DeviceExportTable(), opts, database),
			},
			inventory.TopUpsSource: {
				Source: newSource(cfg.Sync, cfg.Sync.TopUps),
				Sheet:  inventory.NewTopUpReconciler(inventory.TopUpSheetTable(), opts, database),
				Import: inventory.NewTopUpReconciler(inventory.TopUpExportTable(), opts, database),
			},
		},
		Order:    []string{inventory.DevicesSource, inventory.TopUpsSource},
		Reporter: rep,
	})

	return &app{cfg: cfg, db: database, status: status, reporter: rep, syncer: s}, nil
}

// newSource prefers a CSV export URL over the Sheets API.
func newSource(sc config.Sync, src config.Source) syncer.Fetcher {
	switch {
	case src.URL != "":
		return sheet.NewHTTPSource(sheet.HTTPConfig{URL: src.URL, Timeout: sc.FetchTimeout})
	case src.SpreadsheetID != "":
		return sheet.NewAPISource(sheet.APIConfig{
			SpreadsheetID: src.SpreadsheetID,
			Range:         src.Range,
			APIKey:        sc.APIKey,
		})
	}
	return nil
}

func (a *app) Close(ctx context.Context) {
	a.reporter.Close(ctx)
	a.db.Close()
}

func normalizeSource(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
