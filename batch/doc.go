// Package batch processes directories of PDF files into outline files.
//
// A [Processor] scans its input directory, non-recursively, for files
// ending in .pdf (any case), infers an outline for each document on a
// bounded worker pool, and writes one rendered file per document to the
// output directory. A failure on one document is recorded in the run
// [Report] and the batch continues; the run itself fails only when the
// input directory cannot be scanned.
//
//	processor := batch.NewProcessor("./pdfs", "./outlines")
//	report, err := processor.Run(context.Background())
//
// Progress is logged through the configured *slog.Logger with per-file
// fields; the default is slog.Default().
package batch
