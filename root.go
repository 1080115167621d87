package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"ops-dashboard/internal/api"
	"ops-dashboard/internal/config"
	"ops-dashboard/internal/db"
	"ops-dashboard/internal/export"
	"ops-dashboard/internal/inventory"
	"ops-dashboard/internal/reconcile"
	"ops-dashboard/internal/worker"

	"github.com/spf13/cobra"
)

var sources = []string{inventory.DevicesSource, inventory.TopUpsSource}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:           "opsdash",
		Short:         "Operations dashboard backend: device and SIM top-up inventories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (YAML, TOML or JSON)")

	cmd.AddCommand(newServeCmd(&opts))
	cmd.AddCommand(newSyncCmd(&opts))
	cmd.AddCommand(newImportCmd(&opts))
	cmd.AddCommand(newExportCmd(&opts))
	cmd.AddCommand(newMigrateCmd(&opts))
	return cmd
}

func loadConfig(opts *rootOptions, logTo io.Writer) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, withCode(exitConfig, err)
	}
	setupLogger(logTo, cfg.Log.Level)
	return cfg, nil
}

func sourceArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return withCode(exitUsage, err)
	}
	name := normalizeSource(args[0])
	for _, s := range sources {
		if s == name {
			return nil
		}
	}
	return withCode(exitUsage, fmt.Errorf("unknown source %q, want one of %s", args[0], strings.Join(sources, ", ")))
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled sheet sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, os.Stdout)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	slog.InfoContext(ctx, "Starting service...")
	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if err := a.status.Hydrate(ctx); err != nil {
		slog.ErrorContext(ctx, "Status cache not hydrated", "error", err)
	} else {
		slog.InfoContext(ctx, "Status cache hydrated", "sources", len(a.status.Snapshot()))
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.New(api.Config{
			Devices:     a.db,
			TopUps:      a.db,
			Syncer:      a.syncer,
			Status:      a.status,
			CORSOrigins: cfg.HTTP.CORSOrigins,
		}).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg := sync.WaitGroup{}
	wg.Go(func() {
		worker.New(worker.Config{
			Name:      "sheet-sync",
			Interval:  cfg.Sync.Interval,
			Processor: a.syncer,
		}).Run(ctx)
	})

	serveErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		slog.ErrorContext(ctx, "HTTP server shutdown failed", "error", shutdownErr)
	}
	wg.Wait()
	slog.InfoContext(ctx, "Service stopped")
	if err != nil {
		return withCode(exitRuntime, err)
	}
	return nil
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <devices|topups>",
		Short: "Fetch a configured sheet and reconcile it into the database",
		Args:  sourceArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			res, err := a.syncer.Sync(cmd.Context(), normalizeSource(args[0]))
			if err != nil {
				return withCode(exitSync, err)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

type importOptions struct {
	file string
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var iopts importOptions
	cmd := &cobra.Command{
		Use:   "import <devices|topups>",
		Short: "Reconcile an exported CSV or XLSX file into the database",
		Args:  sourceArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readImportFile(iopts.file)
			if err != nil {
				return withCode(exitUsage, err)
			}
			cfg, err := loadConfig(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			res, err := a.syncer.Import(cmd.Context(), normalizeSource(args[0]), text)
			if err != nil {
				return withCode(exitSync, err)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&iopts.file, "file", "", "Export file to import (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return export.XLSXToCSV(bytes.NewReader(data))
	}
	return string(data), nil
}

type exportOptions struct {
	format string
	out    string
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var eo exportOptions
	cmd := &cobra.Command{
		Use:   "export <devices|topups>",
		Short: "Write an inventory as CSV or XLSX",
		Args:  sourceArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(eo.format)
			if err != nil {
				return withCode(exitUsage, err)
			}
			cfg, err := loadConfig(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			header, rows, err := a.exportRows(cmd.Context(), normalizeSource(args[0]))
			if err != nil {
				return withCode(exitDB, err)
			}
			var buf bytes.Buffer
			if err := export.Write(&buf, format, header, rows); err != nil {
				return withCode(exitRuntime, err)
			}
			if eo.out == "" || eo.out == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(eo.out, buf.Bytes(), 0o644); err != nil {
				return withCode(exitRuntime, err)
			}
			slog.InfoContext(cmd.Context(), "Export written", "source", args[0], "rows", len(rows), "path", eo.out)
			return nil
		},
	}
	cmd.Flags().StringVar(&eo.format, "format", string(export.CSV), "Output format: csv or xlsx")
	cmd.Flags().StringVar(&eo.out, "out", "-", "Output path, - for stdout")
	return cmd
}

func (a *app) exportRows(ctx context.Context, source string) ([]string, [][]string, error) {
	if source == inventory.DevicesSource {
		recs, err := a.db.ListDevices(ctx)
		if err != nil {
			return nil, nil, err
		}
		return inventory.DeviceHeader, export.DeviceRows(recs), nil
	}
	recs, err := a.db.ListTopUps(ctx, db.TopUpFilter{})
	if err != nil {
		return nil, nil, err
	}
	return inventory.TopUpHeader, export.TopUpRows(recs), nil
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			a.Close(context.Background())
			slog.InfoContext(cmd.Context(), "Migrations applied")
			return nil
		},
	}
}

func printResult(w io.Writer, res reconcile.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
