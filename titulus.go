// Package titulus infers document titles and heading outlines from the
// typography of PDF files.
//
// Basic usage:
//
//	o, err := titulus.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(o.Title)
//
// With options:
//
//	data, err := titulus.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    WithoutTagging().
//	    JSON()
//
// For advanced use cases, the lower-level reader, outline, export, and
// batch packages are also available.
package titulus

import (
	"errors"

	"github.com/tsawler/titulus/model"
)

// Open prepares an Extractor for the PDF at filename. The file is read
// when a terminal operation such as Outline or JSON runs; there is no
// handle to hold open or close.
//
// Example:
//
//	o, err := titulus.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already-built document model.
// This is useful for documents read ahead of time with the reader package
// or assembled by hand.
//
// Example:
//
//	doc, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	title, err := titulus.FromDocument(doc).Title()
func FromDocument(doc *model.Document) *Extractor {
	ext := &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
	if doc == nil {
		ext.err = errors.New("nil document")
	}
	return ext
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	title := titulus.Must(titulus.Open("document.pdf").Title())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
