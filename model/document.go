package model

import (
	"path/filepath"
	"strings"
)

// Document represents one source document prepared for outline inference
type Document struct {
	Source string // Path or name the document was read from
	Pages  []*Page
}

// NewDocument creates a new empty document for the given source path or name
func NewDocument(source string) *Document {
	return &Document{
		Source: source,
		Pages:  make([]*Page, 0),
	}
}

// AddPage adds a page to the document and assigns its 1-based number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil when out of range
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Text returns the plain text of all pages, separated by blank lines.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, page := range d.Pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(page.Text())
	}
	return sb.String()
}

// BaseName returns the source's base name with any extension stripped.
// It is the fallback document title when no title line qualifies.
func (d *Document) BaseName() string {
	if d.Source == "" {
		return ""
	}
	base := filepath.Base(d.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
