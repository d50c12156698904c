// Package export renders inferred outlines as JSON, Markdown, or HTML.
//
// # Formats
//
// [FormatJSON] produces an indented JSON document with the title and the
// flat entry list. HTML escaping is disabled, so titles and headings keep
// characters like & verbatim. [FormatMarkdown] produces the title as an H1
// heading followed by the entries as a nested bullet list, one indent step
// per heading rank, each entry suffixed with its page number. [FormatHTML]
// runs the Markdown form through goldmark.
//
// # Writing
//
// A [Writer] renders to any io.Writer, to a file, or to a string:
//
//	writer := export.NewWriterWithConfig(export.MarkdownWriterConfig())
//	text, err := writer.WriteToString(outline)
//
// [OutputPathFor] derives the conventional output path for a source
// document, replacing its extension with the format's.
package export
