package outline

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/titulus/model"
)

// TextRun is a visual line merged from its spans, carrying the attributes
// used for classification.
type TextRun struct {
	// Text is the concatenated span text, trimmed
	Text string
	// FontSize is the largest span size on the line
	FontSize float64
	// Flags carries the style flags of the largest span
	Flags int
	// FontName is the font name of the largest span
	FontName string
	// OriginY is the topmost span origin on the line
	OriginY float64
	// Page is the 1-based page number
	Page int
}

// Bold reports whether the run's dominant span is bold.
func (tr TextRun) Bold() bool {
	return tr.Flags&model.FlagBold != 0
}

// HeadingCandidate is a classified heading before post-processing.
type HeadingCandidate struct {
	// Level is the assigned heading level
	Level model.Level
	// Text is the heading text
	Text string
	// Page is the 1-based page number the heading appears on
	Page int
	// OriginY is the vertical position on the page, used for ordering
	OriginY float64
}

// ClassifierConfig holds configuration for heading classification.
type ClassifierConfig struct {
	// MinLength is the minimum heading rune count
	MinLength int
	// MaxLength is the maximum heading rune count
	MaxLength int
	// ExclusionPatterns screens boilerplate, matched against lowercased text
	ExclusionPatterns []*regexp.Regexp
	// TitleOverlapLength is the minimum title rune count before containment
	// and similarity checks treat text as a title duplicate
	TitleOverlapLength int
	// TitleSimilarity is the word set similarity above which text counts as
	// a title duplicate
	TitleSimilarity float64
	// TitleSizeTolerance treats sizes within this delta of the title size
	// as title-sized
	TitleSizeTolerance float64
	// BoldRatio is the minimum size relative to body text for bold text to
	// qualify as a fourth-level heading
	BoldRatio float64
}

// DefaultClassifierConfig returns sensible defaults for classification.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MinLength:          5,
		MaxLength:          200,
		ExclusionPatterns:  defaultExclusionPatterns(),
		TitleOverlapLength: 10,
		TitleSimilarity:    0.7,
		TitleSizeTolerance: 0.1,
		BoldRatio:          1.05,
	}
}

// Classifier turns page lines into heading candidates using font analysis
// thresholds, title suppression, and linguistic validation.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// MergeLines merges each line's spans into a single TextRun. The run takes
// the size, flags, and font of its largest span, ties keeping the earlier
// span, and the topmost span origin as its position. Lines with no spans or
// only whitespace are dropped.
func (c *Classifier) MergeLines(page *model.Page) []TextRun {
	if page == nil {
		return nil
	}

	runs := make([]TextRun, 0, len(page.Lines))
	for _, line := range page.Lines {
		if len(line.Spans) == 0 {
			continue
		}

		var text strings.Builder
		maxSize := 0.0
		flags := 0
		font := ""
		minY := line.Spans[0].Y
		for _, span := range line.Spans {
			text.WriteString(span.Text)
			if span.Size > maxSize {
				maxSize = span.Size
				flags = span.Flags
				font = span.Font
			}
			if span.Y < minY {
				minY = span.Y
			}
		}

		trimmed := strings.TrimSpace(text.String())
		if trimmed == "" {
			continue
		}
		runs = append(runs, TextRun{
			Text:     trimmed,
			FontSize: maxSize,
			Flags:    flags,
			FontName: font,
			OriginY:  minY,
			Page:     page.Number,
		})
	}
	return runs
}

// ClassifyPage merges the page's lines and classifies each run, returning
// accepted candidates in line order. The run context supplies the document
// title and tracks dedup keys across pages of the same document.
func (c *Classifier) ClassifyPage(page *model.Page, analysis *FontAnalysis, run *RunContext, v Validator) []HeadingCandidate {
	var headings []HeadingCandidate
	for _, tr := range c.MergeLines(page) {
		if !c.isValidHeadingText(tr.Text) {
			continue
		}
		if candidate := c.classify(tr, analysis, run, v); candidate != nil {
			headings = append(headings, *candidate)
		}
	}
	return headings
}

// classify applies the acceptance chain to one run: title suppression,
// level assignment, linguistic validation, then dedup.
func (c *Classifier) classify(tr TextRun, analysis *FontAnalysis, run *RunContext, v Validator) *HeadingCandidate {
	if run.titleLower != "" && c.isTitleDuplicate(tr.Text, run.titleLower) {
		return nil
	}

	// Title-sized text past page 1 is a running title echo unless it
	// carries a structural section cue.
	if run.Title.Size != 0 && absFloat(tr.FontSize-run.Title.Size) < c.config.TitleSizeTolerance &&
		tr.Page > 1 && !looksLikeSectionTitle(tr.Text) {
		return nil
	}

	level := c.levelFor(tr.FontSize, tr.Flags, analysis)
	if level == model.LevelUnknown {
		return nil
	}

	if !v.IsHeadingLike(tr.Text) {
		return nil
	}

	key := level.String() + ":" + strings.ToLower(tr.Text)
	if run.seen[key] {
		return nil
	}
	run.seen[key] = true

	return &HeadingCandidate{Level: level, Text: tr.Text, Page: tr.Page, OriginY: tr.OriginY}
}

// isValidHeadingText screens out text that can never be a heading: out of
// bounds lengths, boilerplate, bare numbers, degenerate runs, links, low
// alphanumeric density, and lines with no word longer than two runes after
// stripping punctuation.
func (c *Classifier) isValidHeadingText(text string) bool {
	trimmed := strings.TrimSpace(text)
	length := len([]rune(trimmed))
	if length < c.config.MinLength || length > c.config.MaxLength {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, p := range c.config.ExclusionPatterns {
		if p.MatchString(lower) {
			return false
		}
	}
	if pureNumberPattern.MatchString(trimmed) {
		return false
	}
	if degeneratePattern.MatchString(trimmed) {
		return false
	}
	if linkPattern.MatchString(lower) {
		return false
	}

	alnum := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			alnum++
		}
	}
	if float64(alnum) < math.Max(3, float64(length)*0.5) {
		return false
	}

	words := strings.Fields(trimmed)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if len([]rune(strings.Trim(w, ".,!?;:"))) > 2 {
			return true
		}
	}
	return false
}

// isTitleDuplicate reports whether text repeats the document title: an
// exact match, or for titles longer than the overlap length, containment in
// either direction or high word set similarity.
func (c *Classifier) isTitleDuplicate(text, titleLower string) bool {
	textLower := strings.ToLower(strings.TrimSpace(text))
	if textLower == titleLower {
		return true
	}
	if len([]rune(titleLower)) > c.config.TitleOverlapLength {
		if strings.Contains(titleLower, textLower) || strings.Contains(textLower, titleLower) {
			return true
		}
		if textSimilarity(textLower, titleLower) > c.config.TitleSimilarity {
			return true
		}
	}
	return false
}

// levelFor maps a font size to a heading level, largest threshold first.
// Bold text below every threshold still maps to the lowest level when it
// is modestly larger than body text.
func (c *Classifier) levelFor(size float64, flags int, analysis *FontAnalysis) model.Level {
	switch {
	case size >= analysis.H1Threshold:
		return model.LevelH1
	case size >= analysis.H2Threshold:
		return model.LevelH2
	case size >= analysis.H3Threshold:
		return model.LevelH3
	case size >= analysis.H4Threshold:
		return model.LevelH4
	}
	if flags&model.FlagBold != 0 && size >= analysis.BodySize*c.config.BoldRatio {
		return model.LevelH4
	}
	return model.LevelUnknown
}
