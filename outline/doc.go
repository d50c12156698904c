// Package outline infers a document title and heading outline from font
// and position signals.
//
// This package classifies merged text lines into heading levels H1 through
// H4 by comparing their font sizes against thresholds derived from the
// document's body text, then screens and orders the results into a flat
// outline.
//
// # Pipeline
//
// The [Engine] orchestrates all pipeline stages:
//
//	engine := outline.NewEngine()
//	result, err := engine.BuildOutline(doc)
//
// Stages run in a fixed order:
//
//   - [TitleExtractor] - establishes the document title from the first page
//   - [SizeAnalyzer] - samples pages to find the body size and level thresholds
//   - [Classifier] - merges spans into lines and classifies them per page
//   - [PostProcessor] - orders entries and collapses duplicates and fragments
//
// Per-document state lives in a [RunContext], so one engine can serve many
// documents, including concurrently.
//
// # Validation
//
// Classified text passes a linguistic plausibility check before it is
// accepted. The [TaggedValidator] uses part-of-speech evidence from an
// [nlp.Tagger]; the [RuleValidator] uses casing and length heuristics alone
// and serves as the fallback when tagging fails.
//
// # Configuration
//
// Each stage can be configured independently:
//
//	config := outline.DefaultEngineConfig()
//	config.Analyzer.H1Ratio = 2.2
//	config.Classifier.MinLength = 8
//	engine := outline.NewEngineWithConfig(config)
package outline
