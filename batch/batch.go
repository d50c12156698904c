package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tsawler/titulus/export"
	"github.com/tsawler/titulus/outline"
	"github.com/tsawler/titulus/reader"
)

// ErrNoInput indicates the input directory holds no PDF files
var ErrNoInput = errors.New("no pdf files found")

// ProcessorConfig holds configuration options for a batch run
type ProcessorConfig struct {
	// InputDir is the directory scanned, non-recursively, for PDF files
	InputDir string

	// OutputDir receives one rendered outline per input document
	OutputDir string

	// Workers bounds how many documents are processed concurrently
	Workers int

	// Format selects the rendering for the output files
	Format export.Format

	// Logger receives per-file progress; nil means slog.Default()
	Logger *slog.Logger
}

// DefaultProcessorConfig returns sensible defaults for batch processing
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Workers: 4,
		Format:  export.FormatJSON,
	}
}

// Processor runs outline inference over every PDF in a directory
type Processor struct {
	config ProcessorConfig
	log    *slog.Logger
}

// NewProcessor creates a processor for the given directories with
// default settings
func NewProcessor(inputDir, outputDir string) *Processor {
	config := DefaultProcessorConfig()
	config.InputDir = inputDir
	config.OutputDir = outputDir
	return NewProcessorWithConfig(config)
}

// NewProcessorWithConfig creates a processor with custom configuration
func NewProcessorWithConfig(config ProcessorConfig) *Processor {
	if config.Workers < 1 {
		config.Workers = 1
	}

	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Processor{
		config: config,
		log:    log,
	}
}

// FileResult records the outcome for a single input document
type FileResult struct {
	// Input is the path of the source document
	Input string

	// Output is the path of the rendered outline, empty on failure
	Output string

	// Title is the inferred document title, empty on failure
	Title string

	// Entries is the number of outline entries produced
	Entries int

	// Duration is how long the document took to process
	Duration time.Duration

	// Err holds the failure, nil on success
	Err error
}

// Report summarizes a batch run
type Report struct {
	// RunID uniquely identifies this batch run
	RunID string

	// Results holds one entry per input document, in scan order
	Results []FileResult

	// Processed counts documents that produced an output file
	Processed int

	// Failed counts documents that could not be processed
	Failed int

	// Duration is the wall time of the whole run
	Duration time.Duration
}

// Run processes every PDF under the input directory on a bounded worker
// pool and returns the per-file report. A document failure is recorded in
// the report without aborting the batch; Run itself fails only when the
// input directory cannot be scanned or the output directory cannot be
// created. Cancelling the context stops dispatch between documents and
// records the context error for the files never started.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	started := time.Now()

	files, err := p.scan()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	report := &Report{
		RunID:   uuid.New().String(),
		Results: make([]FileResult, len(files)),
	}

	log := p.log.With("run_id", report.RunID)
	log.Info("batch started",
		"files", len(files),
		"workers", p.config.Workers,
		"format", p.config.Format.String())

	engine := outline.NewEngine()

	writerConfig := export.DefaultWriterConfig()
	writerConfig.Format = p.config.Format
	writer := export.NewWriterWithConfig(writerConfig)

	sem := make(chan struct{}, p.config.Workers)
	var wg sync.WaitGroup

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			report.Results[i] = FileResult{Input: file, Err: err}
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			report.Results[i] = FileResult{Input: file, Err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			defer func() { <-sem }()
			report.Results[i] = p.processFile(log, engine, writer, file)
		}(i, file)
	}

	wg.Wait()

	for _, r := range report.Results {
		if r.Err != nil {
			report.Failed++
		} else {
			report.Processed++
		}
	}
	report.Duration = time.Since(started)

	log.Info("batch finished",
		"processed", report.Processed,
		"failed", report.Failed,
		"duration_ms", report.Duration.Milliseconds())

	return report, nil
}

// scan lists the PDF files directly under the input directory. os.ReadDir
// returns entries sorted by name, so the result is already ordered.
func (p *Processor) scan() ([]string, error) {
	entries, err := os.ReadDir(p.config.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(p.config.InputDir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", p.config.InputDir, ErrNoInput)
	}
	return files, nil
}

// processFile reads one document, infers its outline, and writes the
// rendered result next to its siblings in the output directory
func (p *Processor) processFile(log *slog.Logger, engine *outline.Engine, writer *export.Writer, path string) FileResult {
	started := time.Now()
	result := FileResult{Input: path}

	doc, err := reader.Open(path)
	if err != nil {
		return fail(log, result, started, err)
	}

	inferred, err := engine.BuildOutline(doc)
	if err != nil {
		return fail(log, result, started, err)
	}

	outPath := export.OutputPathFor(path, p.config.OutputDir, p.config.Format)
	if err := writer.WriteToFile(inferred, outPath); err != nil {
		return fail(log, result, started, err)
	}

	result.Output = outPath
	result.Title = inferred.Title
	result.Entries = inferred.EntryCount()
	result.Duration = time.Since(started)

	log.Info("document processed",
		"file", path,
		"pages", doc.PageCount(),
		"entries", result.Entries,
		"duration_ms", result.Duration.Milliseconds())

	return result
}

// fail records the error on the result and logs it
func fail(log *slog.Logger, result FileResult, started time.Time, err error) FileResult {
	result.Err = err
	result.Duration = time.Since(started)
	log.Error("document failed", "file", result.Input, "error", err)
	return result
}
