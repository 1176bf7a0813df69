package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/seeder/internal/admin"
	"github.com/JonMunkholm/seeder/internal/config"
	"github.com/JonMunkholm/seeder/internal/core"
	_ "github.com/JonMunkholm/seeder/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/seeder/internal/demo"
	"github.com/JonMunkholm/seeder/internal/logging"
	"github.com/JonMunkholm/seeder/internal/metrics"
	"github.com/JonMunkholm/seeder/internal/report"
	"github.com/JonMunkholm/seeder/internal/storage"
)

func main() {
	// Load .env file if it exists; variables already set take precedence
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries only the report
	logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"driver", cfg.Storage.Driver,
		"data_dir", cfg.Storage.DataDir,
		"workers", cfg.Pool.Workers,
		"busy_timeout", cfg.Storage.BusyTimeout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("seed run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	stores, err := storage.OpenAll(cfg.StorageOptions(), core.All())
	if err != nil {
		return err
	}
	slog.Info("tables registered", "count", core.TableCount())

	// Drop and recreate every table before seeding
	reset := &admin.ResetDbs{Stores: stores, Timeout: cfg.Storage.ResetTimeout}
	if err := reset.ResetAll(ctx); err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	service, err := core.NewService(stores,
		core.WithWorkers(cfg.Pool.Workers),
		core.WithMetrics(recorder),
	)
	if err != nil {
		return err
	}

	rep := service.Seed(ctx, demo.Dataset())
	if err := report.WriteText(os.Stdout, rep); err != nil {
		return err
	}

	// Optional outputs. Failures are logged; the report is already printed.
	logger := logging.FromContext(logging.WithRunID(ctx, rep.RunID))

	if cfg.Report.HTMLPath != "" {
		if err := report.WriteHTMLFile(ctx, cfg.Report.HTMLPath, rep); err != nil {
			logger.Warn("failed to write HTML report", "path", cfg.Report.HTMLPath, "error", err)
		} else {
			logger.Info("HTML report written", "path", cfg.Report.HTMLPath)
		}
	}

	if cfg.Report.ArchiveEnabled() {
		archiver, err := report.NewS3Archiver(ctx, cfg.Report.S3Config())
		if err != nil {
			logger.Warn("failed to configure report archive", "error", err)
		} else if key, err := archiver.Archive(ctx, rep); err != nil {
			logger.Warn("failed to archive report", "error", err)
		} else {
			logger.Info("report archived", "bucket", cfg.Report.S3Bucket, "key", key)
		}
	}

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		} else {
			logger.Debug("metrics written", "path", cfg.Metrics.Textfile)
		}
	}

	return nil
}
