// Package reader builds the document model from PDF files.
//
// This package reads a PDF's embedded text layer and assembles its
// positioned character runs into the lines and spans the outline pipeline
// consumes. Scanned (image-only) pages yield no text and come out empty.
//
// # Reading Files
//
// Use [Open] to read a PDF with default configuration:
//
//	doc, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or [Read] with explicit configuration:
//
//	config := reader.DefaultConfig()
//	config.RowTolerance = 2.0
//	doc, err := reader.Read("document.pdf", config)
//
// # Assembly
//
// Characters are grouped into visual lines by vertical proximity, ordered
// top to bottom and left to right, and merged into spans while the font
// name and size hold. Word-sized horizontal gaps become spaces; larger
// gaps start a new span. Vertical origins are converted to top-relative
// coordinates and span text is NFC-normalized.
//
// Font style is not encoded in the text layer, so bold and italic flags
// are derived from font name markers such as "Bold", "Black", and
// "Oblique".
package reader
