package reader

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/titulus/model"
	"golang.org/x/text/unicode/norm"
)

// boldMarkers are font name substrings that indicate a bold face.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// italicMarkers are font name substrings that indicate an italic face.
var italicMarkers = []string{"italic", "oblique"}

// assembleLines groups character-level text runs into visual lines and
// merges them into spans. Lines come out top to bottom, spans left to
// right. Character origins are bottom-relative in the content stream and
// are flipped to top-relative here.
func assembleLines(texts []pdf.Text, pageHeight float64, config Config) []model.Line {
	rows := groupRows(filterBlank(texts), config.RowTolerance)

	lines := make([]model.Line, 0, len(rows))
	for _, row := range rows {
		spans := mergeRow(row, pageHeight, config)
		if len(spans) == 0 {
			continue
		}
		lines = append(lines, model.Line{Spans: spans})
	}
	return lines
}

// filterBlank drops text runs that carry only whitespace.
func filterBlank(texts []pdf.Text) []pdf.Text {
	kept := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			kept = append(kept, t)
		}
	}
	return kept
}

// groupRows buckets text runs into visual lines by vertical proximity and
// orders them top to bottom, left to right. Content stream order is not
// reading order, so both sorts are required.
func groupRows(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	type bucket struct {
		y     float64
		texts []pdf.Text
	}

	var buckets []bucket
	for _, t := range texts {
		placed := false
		for i := range buckets {
			if absDiff(t.Y, buckets[i].y) <= tolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{y: t.Y, texts: []pdf.Text{t}})
		}
	}

	// Higher Y is higher on the page in PDF coordinates.
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].y > buckets[j].y
	})

	rows := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		sort.SliceStable(b.texts, func(x, y int) bool {
			return b.texts[x].X < b.texts[y].X
		})
		rows[i] = b.texts
	}
	return rows
}

// mergeRow merges one visual line's characters into spans. A span extends
// while font name and size are unchanged and the horizontal gap stays
// small; word-sized gaps become spaces inside the span text.
func mergeRow(row []pdf.Text, pageHeight float64, config Config) []model.Span {
	var spans []model.Span
	var text strings.Builder
	var current pdf.Text
	var rightEdge float64
	open := false

	flush := func() {
		if !open {
			return
		}
		spans = append(spans, model.Span{
			Text:  norm.NFC.String(text.String()),
			Size:  current.FontSize,
			Flags: styleFlags(current.Font),
			Font:  current.Font,
			X:     current.X,
			Y:     pageHeight - current.Y,
		})
		text.Reset()
		open = false
	}

	for _, t := range row {
		if !open {
			current = t
			rightEdge = t.X + t.W
			text.WriteString(t.S)
			open = true
			continue
		}

		gap := t.X - rightEdge
		if t.Font != current.Font || t.FontSize != current.FontSize ||
			gap > config.SpanGapFraction*current.FontSize {
			flush()
			current = t
			rightEdge = t.X + t.W
			text.WriteString(t.S)
			open = true
			continue
		}

		if gap > config.WordGapFraction*current.FontSize {
			text.WriteString(" ")
		}
		text.WriteString(t.S)
		if edge := t.X + t.W; edge > rightEdge {
			rightEdge = edge
		}
	}
	flush()
	return spans
}

// styleFlags derives font style flags from the font's name.
func styleFlags(font string) int {
	lower := strings.ToLower(font)
	flags := 0
	for _, marker := range boldMarkers {
		if strings.Contains(lower, marker) {
			flags |= model.FlagBold
			break
		}
	}
	for _, marker := range italicMarkers {
		if strings.Contains(lower, marker) {
			flags |= model.FlagItalic
			break
		}
	}
	return flags
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
