package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/tsawler/titulus/batch"
	"github.com/tsawler/titulus/export"
)

func main() {
	inputDir := flag.String("in", envOr("TITULUS_INPUT_DIR", "."), "directory scanned for PDF files")
	outputDir := flag.String("out", envOr("TITULUS_OUTPUT_DIR", "."), "directory receiving outline files")
	workers := flag.Int("workers", envInt("TITULUS_WORKERS", 4), "documents processed concurrently")
	formatName := flag.String("format", envOr("TITULUS_FORMAT", "json"), "output format: json, markdown or html")
	quiet := flag.Bool("quiet", false, "log warnings and errors only")
	flag.Parse()

	opts := &slog.HandlerOptions{}
	if *quiet {
		opts.Level = slog.LevelWarn
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, opts))

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	cfg := batch.DefaultProcessorConfig()
	cfg.InputDir = *inputDir
	cfg.OutputDir = *outputDir
	cfg.Workers = *workers
	cfg.Format = format
	cfg.Logger = log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
	}()

	// Per-file failures are recorded in the report and logged by the
	// processor; only a run that could not start is fatal here.
	if _, err := batch.NewProcessorWithConfig(cfg).Run(ctx); err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
