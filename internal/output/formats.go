// Package output renders query results: as boxed tables for the
// interactive prompt, or as CSV, JSON or Markdown for scripting.
package output

import (
	"io"

	"github.com/MatthewFay/git-query/internal/store"
)

// Compile-time interface conformance checks.
var (
	_ ResultWriter = (*ConsoleResultWriter)(nil)
	_ ResultWriter = (*JSONResultWriter)(nil)
	_ ResultWriter = (*CSVResultWriter)(nil)
	_ ResultWriter = (*MarkdownResultWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// RenderOptions controls rendering behavior.
type RenderOptions struct {
	// MaxWidth caps console table rows at this many characters; 0 lets
	// rows grow to their content.
	MaxWidth int
}

// ResultWriter writes one query result to a destination.
type ResultWriter interface {
	Write(w io.Writer, res *store.Result, query string) error
}

// NewResultWriter creates a result writer for the specified format.
// Unknown formats fall back to the console writer.
func NewResultWriter(format OutputFormat, options RenderOptions) ResultWriter {
	switch format {
	case FormatJSON:
		return &JSONResultWriter{}
	case FormatCSV:
		return &CSVResultWriter{}
	case FormatMarkdown:
		return &MarkdownResultWriter{}
	default:
		return &ConsoleResultWriter{MaxWidth: options.MaxWidth}
	}
}
