package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/titulus/model"
)

// FontAnalysis summarizes the font size landscape of a document: the
// dominant body size and the minimum size for each heading level.
type FontAnalysis struct {
	// BodySize is the most frequent sampled font size
	BodySize float64
	// H1Threshold is the minimum size classified as a top-level heading
	H1Threshold float64
	// H2Threshold is the minimum size classified as a second-level heading
	H2Threshold float64
	// H3Threshold is the minimum size classified as a third-level heading
	H3Threshold float64
	// H4Threshold is the minimum size classified as a fourth-level heading
	H4Threshold float64
	// Sizes lists the distinct sampled sizes in descending order
	Sizes []float64
	// Counts maps each sampled size to its sample count
	Counts map[float64]int
}

// Threshold returns the minimum font size for the given heading level,
// or 0 for an unknown level.
func (fa *FontAnalysis) Threshold(level model.Level) float64 {
	if fa == nil {
		return 0
	}
	switch level {
	case model.LevelH1:
		return fa.H1Threshold
	case model.LevelH2:
		return fa.H2Threshold
	case model.LevelH3:
		return fa.H3Threshold
	case model.LevelH4:
		return fa.H4Threshold
	default:
		return 0
	}
}

// AnalyzerConfig holds configuration for font size analysis.
type AnalyzerConfig struct {
	// MaxSamplePages caps how many leading pages are sampled
	MaxSamplePages int
	// EdgeMargin excludes spans within this distance of the top or bottom
	// page edge, in points
	EdgeMargin float64
	// MinTextLength is the minimum rune count for a span to be sampled
	MinTextLength int
	// H1Ratio scales the body size into the H1 threshold
	H1Ratio float64
	// H2Ratio scales the body size into the H2 threshold
	H2Ratio float64
	// H3Ratio scales the body size into the H3 threshold
	H3Ratio float64
	// H4Ratio scales the body size into the H4 threshold
	H4Ratio float64
}

// DefaultAnalyzerConfig returns sensible defaults for font size analysis.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxSamplePages: 10,
		EdgeMargin:     50,
		MinTextLength:  3,
		H1Ratio:        2.0,
		H2Ratio:        1.6,
		H3Ratio:        1.3,
		H4Ratio:        1.1,
	}
}

// SizeAnalyzer derives a FontAnalysis from sampled document spans.
type SizeAnalyzer struct {
	config AnalyzerConfig
}

// NewSizeAnalyzer creates an analyzer with default configuration.
func NewSizeAnalyzer() *SizeAnalyzer {
	return &SizeAnalyzer{config: DefaultAnalyzerConfig()}
}

// NewSizeAnalyzerWithConfig creates an analyzer with custom configuration.
func NewSizeAnalyzerWithConfig(config AnalyzerConfig) *SizeAnalyzer {
	return &SizeAnalyzer{config: config}
}

// Analyze samples font sizes across the document and derives heading
// thresholds from the dominant body size. Sampling covers the leading pages
// up to the configured cap, plus the middle and last page of longer
// documents. Spans inside the top or bottom edge margin and spans shorter
// than the minimum text length are ignored.
//
// When no spans survive sampling, a fixed fallback analysis is returned.
func (a *SizeAnalyzer) Analyze(doc *model.Document) *FontAnalysis {
	samples := a.collectSamples(doc)
	if len(samples) == 0 {
		return fallbackAnalysis()
	}

	// Tally occurrences, remembering first-seen order so that ties in
	// frequency resolve deterministically.
	counts := make(map[float64]int)
	var order []float64
	for _, size := range samples {
		if counts[size] == 0 {
			order = append(order, size)
		}
		counts[size]++
	}

	body := order[0]
	for _, size := range order[1:] {
		if counts[size] > counts[body] {
			body = size
		}
	}

	sizes := make([]float64, len(order))
	copy(sizes, order)
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	analysis := &FontAnalysis{
		BodySize:    body,
		H1Threshold: body * a.config.H1Ratio,
		H2Threshold: body * a.config.H2Ratio,
		H3Threshold: body * a.config.H3Ratio,
		H4Threshold: body * a.config.H4Ratio,
		Sizes:       sizes,
		Counts:      counts,
	}

	// With four or more distinct sizes, lift each threshold to the actual
	// sizes present so the largest fonts always map to the highest levels.
	if len(sizes) >= 4 {
		analysis.H1Threshold = math.Max(analysis.H1Threshold, sizes[0])
		analysis.H2Threshold = math.Max(analysis.H2Threshold, sizes[1])
		analysis.H3Threshold = math.Max(analysis.H3Threshold, sizes[2])
		analysis.H4Threshold = math.Max(analysis.H4Threshold, sizes[3])
	}

	return analysis
}

// collectSamples gathers font sizes from the sampled pages. For documents
// longer than the sample cap, the middle and last pages are appended to the
// leading pages without deduplication.
func (a *SizeAnalyzer) collectSamples(doc *model.Document) []float64 {
	if doc == nil {
		return nil
	}

	count := doc.PageCount()
	limit := count
	if limit > a.config.MaxSamplePages {
		limit = a.config.MaxSamplePages
	}

	indexes := make([]int, 0, limit+2)
	for i := 0; i < limit; i++ {
		indexes = append(indexes, i)
	}
	if count > a.config.MaxSamplePages {
		indexes = append(indexes, count/2, count-1)
	}

	var samples []float64
	for _, idx := range indexes {
		page := doc.GetPage(idx + 1)
		if page == nil {
			continue
		}
		for _, line := range page.Lines {
			for _, span := range line.Spans {
				if span.Y < a.config.EdgeMargin || span.Y > page.Height-a.config.EdgeMargin {
					continue
				}
				if len([]rune(strings.TrimSpace(span.Text))) < a.config.MinTextLength {
					continue
				}
				samples = append(samples, span.Size)
			}
		}
	}
	return samples
}

// fallbackAnalysis returns the thresholds used when a document yields no
// usable font samples.
func fallbackAnalysis() *FontAnalysis {
	return &FontAnalysis{
		BodySize:    12,
		H1Threshold: 18,
		H2Threshold: 16,
		H3Threshold: 14,
		H4Threshold: 13,
		Sizes:       []float64{18, 16, 14, 13, 12},
		Counts:      map[float64]int{},
	}
}
