package outline

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/titulus/model"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	titleLinkPattern  = regexp.MustCompile(`^https?://`)
	slashDatePattern  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// TitleConfig holds configuration for title extraction.
type TitleConfig struct {
	// MaxLines caps how many leading lines of the first page are considered
	MaxLines int
	// MinLength is the minimum rune count for a title line
	MinLength int
	// MaxLength is the maximum rune count for a title line
	MaxLength int
	// InvalidPrefixes rejects lines starting with any of these, compared lowercase
	InvalidPrefixes []string
	// MinOverlap is the word overlap needed to credit a line's size to the title
	MinOverlap float64
	// OverlapFraction scales the title word count into an overlap requirement
	OverlapFraction float64
	// DefaultSize is reported when the title's rendered size cannot be found
	DefaultSize float64
}

// DefaultTitleConfig returns sensible defaults for title extraction.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxLines:        15,
		MinLength:       10,
		MaxLength:       300,
		InvalidPrefixes: []string{"page ", "copyright", "©", "confidential", "draft"},
		MinOverlap:      3,
		OverlapFraction: 0.6,
		DefaultSize:     16.0,
	}
}

// TitleExtractor picks the document title from the first page.
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates an extractor with default configuration.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{config: DefaultTitleConfig()}
}

// NewTitleExtractorWithConfig creates an extractor with custom configuration.
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	return &TitleExtractor{config: config}
}

// Extract returns the document title and its rendered font size. The first
// qualifying line among the leading lines of the page wins, with its
// whitespace collapsed. When no line qualifies, or the page is nil, the
// fallback string is returned with a size of 0, meaning the rendered size
// is unknown.
func (e *TitleExtractor) Extract(page *model.Page, fallback string) (string, float64) {
	if page == nil {
		return fallback, 0
	}

	var lines []string
	for _, raw := range strings.Split(page.Text(), "\n") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	limit := len(lines)
	if limit > e.config.MaxLines {
		limit = e.config.MaxLines
	}
	for _, line := range lines[:limit] {
		if !e.isValidTitle(line) {
			continue
		}
		title := strings.TrimSpace(whitespacePattern.ReplaceAllString(line, " "))
		size := e.titleSize(page, title)
		if size == 0 {
			size = e.config.DefaultSize
		}
		return title, size
	}

	return fallback, 0
}

// isValidTitle screens a candidate title line: length within bounds, no
// boilerplate prefix, not a link, not a bare number or slash date.
func (e *TitleExtractor) isValidTitle(text string) bool {
	length := len([]rune(text))
	if length < e.config.MinLength || length > e.config.MaxLength {
		return false
	}

	lower := strings.ToLower(text)
	for _, prefix := range e.config.InvalidPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	if titleLinkPattern.MatchString(lower) {
		return false
	}
	if pureNumberPattern.MatchString(text) {
		return false
	}
	if slashDatePattern.MatchString(text) {
		return false
	}
	return true
}

// titleSize returns the largest line size among page lines sharing enough
// words with the title, or 0 when no line shares enough.
func (e *TitleExtractor) titleSize(page *model.Page, title string) float64 {
	titleWords := wordSet(strings.ToLower(title))
	required := math.Min(e.config.MinOverlap, float64(len(titleWords))*e.config.OverlapFraction)

	maxSize := 0.0
	for _, line := range page.Lines {
		lineWords := wordSet(strings.ToLower(line.Text()))
		overlap := 0
		for w := range titleWords {
			if lineWords[w] {
				overlap++
			}
		}
		if float64(overlap) >= required {
			maxSize = math.Max(maxSize, line.MaxSize())
		}
	}
	return maxSize
}
