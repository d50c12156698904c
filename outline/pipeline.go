package outline

import (
	"errors"
	"strings"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/nlp"
)

// TitleContext is the title established for a document run: its text and
// the font size it was rendered at. A Size of 0 means the rendered size is
// unknown, which disables title-sized echo suppression.
type TitleContext struct {
	// Text is the whitespace-normalized title
	Text string
	// Size is the title's rendered font size, 0 when unknown
	Size float64
}

// RunContext carries the state scoped to one document run: the established
// title and the dedup keys issued so far. A context must not be shared
// between documents.
type RunContext struct {
	// Title is the established document title
	Title TitleContext

	titleLower string
	seen       map[string]bool
}

// NewRunContext creates the context for one document run.
func NewRunContext(title TitleContext) *RunContext {
	return &RunContext{
		Title:      title,
		titleLower: strings.ToLower(strings.TrimSpace(title.Text)),
		seen:       make(map[string]bool),
	}
}

// EngineConfig holds the configuration for every pipeline stage.
type EngineConfig struct {
	// Analyzer configures font size analysis
	Analyzer AnalyzerConfig
	// Title configures title extraction
	Title TitleConfig
	// Classifier configures heading classification
	Classifier ClassifierConfig
	// PostProcessor configures ordering and fragment collapse
	PostProcessor PostProcessorConfig
	// Validator overrides the linguistic validator. Nil selects the
	// tagger-backed default.
	Validator Validator
}

// DefaultEngineConfig returns the default configuration for every stage.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Analyzer:      DefaultAnalyzerConfig(),
		Title:         DefaultTitleConfig(),
		Classifier:    DefaultClassifierConfig(),
		PostProcessor: DefaultPostProcessorConfig(),
	}
}

// Engine runs the full outline inference pipeline over a document.
type Engine struct {
	analyzer   *SizeAnalyzer
	titles     *TitleExtractor
	classifier *Classifier
	post       *PostProcessor
	validator  Validator
}

// NewEngine creates an engine with default configuration and the
// tagger-backed validator.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config EngineConfig) *Engine {
	validator := config.Validator
	if validator == nil {
		validator = NewTaggedValidator(nlp.NewProseTagger())
	}
	return &Engine{
		analyzer:   NewSizeAnalyzerWithConfig(config.Analyzer),
		titles:     NewTitleExtractorWithConfig(config.Title),
		classifier: NewClassifierWithConfig(config.Classifier),
		post:       NewPostProcessorWithConfig(config.PostProcessor),
		validator:  validator,
	}
}

// BuildOutline infers the document title and heading outline. Stages run in
// order: title extraction, font analysis, per-page classification, then
// post-processing. All per-document state lives in a fresh run context, so
// one engine can serve many documents.
func (e *Engine) BuildOutline(doc *model.Document) (*model.Outline, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}

	title, titleSize := e.titles.Extract(doc.GetPage(1), doc.BaseName())
	analysis := e.analyzer.Analyze(doc)

	run := NewRunContext(TitleContext{Text: title, Size: titleSize})
	var candidates []HeadingCandidate
	for _, page := range doc.Pages {
		candidates = append(candidates, e.classifier.ClassifyPage(page, analysis, run, e.validator)...)
	}

	outline := model.NewOutline(title)
	for _, candidate := range e.post.Process(candidates) {
		outline.Entries = append(outline.Entries, model.OutlineEntry{
			Level: candidate.Level,
			Text:  candidate.Text,
			Page:  candidate.Page,
		})
	}
	return outline, nil
}

// Analyze exposes the engine's font analysis for inspection without
// building an outline.
func (e *Engine) Analyze(doc *model.Document) *FontAnalysis {
	return e.analyzer.Analyze(doc)
}
