package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/titulus/model"
	"github.com/yuin/goldmark"
)

// Format defines the available output formats
type Format int

const (
	// FormatJSON writes the outline as an indented JSON document
	FormatJSON Format = iota
	// FormatMarkdown writes the outline as a nested Markdown list
	FormatMarkdown
	// FormatHTML writes the Markdown rendering converted to HTML
	FormatHTML
)

// String returns a human-readable representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat maps a format name such as "json" or "markdown" to a Format.
// Matching is case-insensitive and "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return FormatJSON, fmt.Errorf("unknown output format: %q", s)
	}
}

// WriterConfig holds configuration options for outline output
type WriterConfig struct {
	// Format specifies the output format
	Format Format

	// IncludePages appends a "(page N)" suffix to Markdown and HTML entries
	IncludePages bool

	// Indent is the indentation step for JSON output
	Indent string
}

// DefaultWriterConfig returns sensible defaults for outline output
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		Format:       FormatJSON,
		IncludePages: true,
		Indent:       "  ",
	}
}

// JSONWriterConfig returns config for JSON output
func JSONWriterConfig() WriterConfig {
	config := DefaultWriterConfig()
	config.Format = FormatJSON
	return config
}

// MarkdownWriterConfig returns config for Markdown output
func MarkdownWriterConfig() WriterConfig {
	config := DefaultWriterConfig()
	config.Format = FormatMarkdown
	return config
}

// HTMLWriterConfig returns config for HTML output
func HTMLWriterConfig() WriterConfig {
	config := DefaultWriterConfig()
	config.Format = FormatHTML
	return config
}

// Writer renders an outline in the configured format
type Writer struct {
	config WriterConfig
}

// NewWriter creates a writer with default configuration
func NewWriter() *Writer {
	return &Writer{
		config: DefaultWriterConfig(),
	}
}

// NewWriterWithConfig creates a writer with custom configuration
func NewWriterWithConfig(config WriterConfig) *Writer {
	return &Writer{
		config: config,
	}
}

// Write renders the outline to the given writer
func (w *Writer) Write(outline *model.Outline, out io.Writer) error {
	if outline == nil {
		return errors.New("nil outline")
	}

	switch w.config.Format {
	case FormatJSON:
		return w.writeJSON(outline, out)
	case FormatMarkdown:
		return w.writeMarkdown(outline, out)
	case FormatHTML:
		return w.writeHTML(outline, out)
	default:
		return fmt.Errorf("unsupported output format: %v", w.config.Format)
	}
}

// WriteToFile renders the outline to a file
func (w *Writer) WriteToFile(outline *model.Outline, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return w.Write(outline, f)
}

// WriteToString renders the outline to a string
func (w *Writer) WriteToString(outline *model.Outline) (string, error) {
	var buf bytes.Buffer
	if err := w.Write(outline, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeJSON renders the outline as an indented JSON document. HTML
// escaping is disabled so characters like & survive verbatim.
func (w *Writer) writeJSON(outline *model.Outline, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", w.config.Indent)

	if err := encoder.Encode(outline); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// writeMarkdown renders the title as an H1 heading followed by the
// entries as a nested bullet list
func (w *Writer) writeMarkdown(outline *model.Outline, out io.Writer) error {
	if _, err := io.WriteString(out, w.renderMarkdown(outline)); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// writeHTML renders the Markdown form and converts it to HTML
func (w *Writer) writeHTML(outline *model.Outline, out io.Writer) error {
	source := w.renderMarkdown(outline)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// renderMarkdown builds the Markdown representation of the outline
func (w *Writer) renderMarkdown(outline *model.Outline) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(outline.Title)
	b.WriteString("\n")

	if len(outline.Entries) > 0 {
		b.WriteString("\n")
	}

	// open holds the heading depths of the enclosing list levels, so a
	// rank jump nests one list step instead of over-indenting the item.
	var open []int
	for _, entry := range outline.Entries {
		depth := entry.Level.Depth()
		for len(open) > 0 && open[len(open)-1] > depth {
			open = open[:len(open)-1]
		}
		if len(open) == 0 || open[len(open)-1] < depth {
			open = append(open, depth)
		}

		b.WriteString(strings.Repeat("  ", len(open)-1))
		b.WriteString("- ")
		b.WriteString(entry.Text)
		if w.config.IncludePages {
			fmt.Fprintf(&b, " (page %d)", entry.Page)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// OutputPathFor returns the path under outDir for the rendered outline of
// inputPath: the input's base name with its extension replaced by the
// format's.
func OutputPathFor(inputPath, outDir string, format Format) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+format.FileExtension())
}
