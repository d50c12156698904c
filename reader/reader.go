package reader

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/titulus/model"
)

// ErrNoPages is returned when a PDF contains no readable pages.
var ErrNoPages = errors.New("no readable pages")

// Config holds configuration for assembling positioned text into the
// document model.
type Config struct {
	// RowTolerance groups characters whose vertical origins differ by at
	// most this many points into one visual line
	RowTolerance float64
	// WordGapFraction inserts a space when the horizontal gap between
	// adjacent characters exceeds this fraction of the font size
	WordGapFraction float64
	// SpanGapFraction starts a new span when the horizontal gap exceeds
	// this fraction of the font size
	SpanGapFraction float64
	// DefaultWidth is the page width used when no MediaBox is present
	DefaultWidth float64
	// DefaultHeight is the page height used when no MediaBox is present
	DefaultHeight float64
}

// DefaultConfig returns sensible defaults for letter-sized documents.
func DefaultConfig() Config {
	return Config{
		RowTolerance:    3.0,
		WordGapFraction: 0.3,
		SpanGapFraction: 2.0,
		DefaultWidth:    612,
		DefaultHeight:   792,
	}
}

// Open reads the PDF at path into a document model with default
// configuration.
func Open(path string) (*model.Document, error) {
	return Read(path, DefaultConfig())
}

// Read reads the PDF at path into a document model. Pages whose content
// cannot be parsed are skipped; if no page is readable the document is
// rejected with [ErrNoPages].
func Read(path string, config Config) (*model.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc := model.NewDocument(path)
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		texts, err := pageContent(p)
		if err != nil {
			continue
		}

		width, height := pageSize(p, config)
		page := model.NewPage(width, height)
		for _, line := range assembleLines(texts, height, config) {
			page.AddLine(line)
		}
		doc.AddPage(page)
	}

	if doc.PageCount() == 0 {
		return nil, fmt.Errorf("failed to read %s: %w", path, ErrNoPages)
	}
	return doc, nil
}

// pageContent returns the positioned text runs of one page. The content
// stream interpreter panics on malformed streams; the panic surfaces here
// as an error.
func pageContent(p pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse page content: %v", r)
		}
	}()
	return p.Content().Text, nil
}

// pageSize reads the page dimensions from its MediaBox. The MediaBox is
// inheritable, so missing entries are looked up through the Parent chain.
func pageSize(p pdf.Page, config Config) (width, height float64) {
	box := inherited(p, "MediaBox")
	if box.Len() == 4 {
		width = box.Index(2).Float64() - box.Index(0).Float64()
		height = box.Index(3).Float64() - box.Index(1).Float64()
	}
	if width <= 0 {
		width = config.DefaultWidth
	}
	if height <= 0 {
		height = config.DefaultHeight
	}
	return width, height
}

// inherited resolves a page attribute, walking up the page tree for
// inheritable entries.
func inherited(p pdf.Page, key string) pdf.Value {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		if r := v.Key(key); !r.IsNull() {
			return r
		}
	}
	return pdf.Value{}
}
