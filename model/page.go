package model

import "strings"

// Font style flag bits carried on a Span. The layout follows the common
// PDF convention where bit 4 marks bold faces.
const (
	FlagItalic = 1 << 1
	FlagBold   = 1 << 4
)

// Span is a run of text rendered with one consistent font, size, and style
type Span struct {
	Text  string  // UTF-8 text content
	Size  float64 // Font size in points
	Flags int     // Style flag bits (FlagBold, FlagItalic)
	Font  string  // Font name as reported by the source
	X     float64 // Horizontal origin in points, increasing rightward
	Y     float64 // Vertical origin in points from the page top, increasing downward
}

// Bold reports whether the span's style flags mark it as bold.
func (s Span) Bold() bool {
	return s.Flags&FlagBold != 0
}

// Italic reports whether the span's style flags mark it as italic.
func (s Span) Italic() bool {
	return s.Flags&FlagItalic != 0
}

// Line is one visual line of text: the spans sharing a baseline, ordered
// left to right
type Line struct {
	Spans []Span
}

// Text returns the concatenated text of all spans on the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Y returns the vertical origin of the line, taken from its first span.
// Empty lines report 0.
func (l Line) Y() float64 {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[0].Y
}

// MaxSize returns the largest span size on the line. Empty lines report 0.
func (l Line) MaxSize() float64 {
	var max float64
	for _, s := range l.Spans {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// Page represents a single page of a document
type Page struct {
	Number int     // 1-indexed page number, assigned by Document.AddPage
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Lines  []Line  // Visual lines in top-to-bottom order
}

// NewPage creates a new page with the given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Lines:  make([]Line, 0),
	}
}

// AddLine appends a line to the page
func (p *Page) AddLine(line Line) {
	p.Lines = append(p.Lines, line)
}

// Text returns the page's plain text, one row per visual line.
func (p *Page) Text() string {
	var sb strings.Builder
	for i, line := range p.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text())
	}
	return sb.String()
}
