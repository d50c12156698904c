// Package model provides the data types shared across the outline
// inference pipeline.
//
// The input side describes a document the way a span reader produced it:
// a [Document] holds ordered [Page] values, each page holds visual [Line]
// values, and each line holds [Span] values carrying text together with
// its font name, size, style flags, and position.
//
//	doc := model.NewDocument("report.pdf")
//	doc.AddPage(page)
//
// The output side is the pipeline's terminal artifact: an [Outline] with
// the inferred document title and a flat, leveled list of [OutlineEntry]
// values ranked [LevelH1] through [LevelH4].
//
// # Coordinates
//
// Span positions use a top-origin convention: Y is the distance in points
// from the top edge of the page, increasing downward. Readers working from
// bottom-origin page geometry must convert before constructing spans.
package model
