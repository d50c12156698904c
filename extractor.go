package titulus

import (
	"errors"
	"fmt"

	"github.com/tsawler/titulus/export"
	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/outline"
	"github.com/tsawler/titulus/reader"
)

// Extractor provides a fluent interface for inferring titles and heading
// outlines from PDF files. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source (exactly one is set)
	filename string
	doc      *model.Document

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// document loads the source, reading the file when the extractor was
// opened by path.
func (e *Extractor) document() (*model.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}
	if e.filename == "" {
		return nil, errors.New("no filename specified")
	}
	return reader.Open(e.filename)
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts the outline to entries from the given pages (1-indexed).
// Multiple calls are cumulative. Title inference always reads page 1.
//
// Example:
//
//	o, err := titulus.Open("doc.pdf").Pages(2, 3).Outline()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	for _, p := range pages {
		if p < 1 {
			newExt.err = fmt.Errorf("page %d out of range", p)
			return newExt
		}
	}
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts the outline to a range of pages (1-indexed,
// inclusive).
//
// Example:
//
//	o, err := titulus.Open("doc.pdf").PageRange(5, 10).Outline()
func (e *Extractor) PageRange(start, end int) *Extractor {
	var pages []int
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return e.Pages(pages...)
}

// WithoutTagging selects the rule-based heading validator instead of the
// part-of-speech tagger. Classification runs faster and needs no language
// model, at some cost in precision on prose-like lines.
//
// Example:
//
//	o, err := titulus.Open("doc.pdf").WithoutTagging().Outline()
func (e *Extractor) WithoutTagging() *Extractor {
	newExt := e.clone()
	newExt.options.withoutTagging = true
	return newExt
}

// Workers sets the concurrency bound reserved for multi-document
// operations. Single-document operations ignore it.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// Format selects the rendering used by Save.
//
// Example:
//
//	err := titulus.Open("doc.pdf").Format(export.FormatMarkdown).Save("outline.md")
func (e *Extractor) Format(format export.Format) *Extractor {
	newExt := e.clone()
	newExt.options.format = format
	return newExt
}

// ============================================================================
// Terminal Operations (run inference and return results)
// ============================================================================

// Outline infers the document title and heading outline. This is a
// terminal operation; the source is read anew on every call.
//
// Example:
//
//	o, err := titulus.Open("document.pdf").Outline()
//	for _, entry := range o.Entries {
//	    fmt.Printf("%s %s (page %d)\n", entry.Level, entry.Text, entry.Page)
//	}
func (e *Extractor) Outline() (*model.Outline, error) {
	if e.err != nil {
		return nil, e.err
	}

	doc, err := e.document()
	if err != nil {
		return nil, err
	}

	config := outline.DefaultEngineConfig()
	if e.options.withoutTagging {
		config.Validator = outline.NewRuleValidator()
	}

	inferred, err := outline.NewEngineWithConfig(config).BuildOutline(doc)
	if err != nil {
		return nil, err
	}

	if len(e.options.pages) > 0 {
		inferred.Entries = filterPages(inferred.Entries, e.options.pages)
	}
	return inferred, nil
}

// Title infers just the document title. Title inference reads only the
// first page, so this is cheaper than a full Outline call.
//
// Example:
//
//	title, err := titulus.Open("document.pdf").Title()
func (e *Extractor) Title() (string, error) {
	if e.err != nil {
		return "", e.err
	}

	doc, err := e.document()
	if err != nil {
		return "", err
	}

	title, _ := outline.NewTitleExtractor().Extract(doc.GetPage(1), doc.BaseName())
	return title, nil
}

// JSON renders the outline as an indented JSON document.
//
// Example:
//
//	data, err := titulus.Open("document.pdf").JSON()
func (e *Extractor) JSON() (string, error) {
	return e.render(export.FormatJSON)
}

// Markdown renders the outline as a Markdown list under the title.
//
// Example:
//
//	md, err := titulus.Open("document.pdf").Markdown()
func (e *Extractor) Markdown() (string, error) {
	return e.render(export.FormatMarkdown)
}

// HTML renders the outline as an HTML fragment.
//
// Example:
//
//	page, err := titulus.Open("document.pdf").HTML()
func (e *Extractor) HTML() (string, error) {
	return e.render(export.FormatHTML)
}

// Save renders the outline in the configured format and writes it to
// path.
//
// Example:
//
//	err := titulus.Open("document.pdf").Format(export.FormatHTML).Save("outline.html")
func (e *Extractor) Save(path string) error {
	inferred, err := e.Outline()
	if err != nil {
		return err
	}

	config := export.DefaultWriterConfig()
	config.Format = e.options.format
	return export.NewWriterWithConfig(config).WriteToFile(inferred, path)
}

// SaveJSON renders the outline as JSON and writes it to path.
//
// Example:
//
//	err := titulus.Open("document.pdf").SaveJSON("outline.json")
func (e *Extractor) SaveJSON(path string) error {
	return e.Format(export.FormatJSON).Save(path)
}

// render builds the outline and renders it in the given format
func (e *Extractor) render(format export.Format) (string, error) {
	inferred, err := e.Outline()
	if err != nil {
		return "", err
	}

	config := export.DefaultWriterConfig()
	config.Format = format
	return export.NewWriterWithConfig(config).WriteToString(inferred)
}

// filterPages keeps the entries recorded for the selected 1-based pages
func filterPages(entries []model.OutlineEntry, pages []int) []model.OutlineEntry {
	wanted := make(map[int]bool, len(pages))
	for _, p := range pages {
		wanted[p] = true
	}

	filtered := make([]model.OutlineEntry, 0, len(entries))
	for _, entry := range entries {
		if wanted[entry.Page] {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
