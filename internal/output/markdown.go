package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MatthewFay/git-query/internal/store"
)

// MarkdownResultWriter writes query results as a Markdown table.
type MarkdownResultWriter struct{}

// Write outputs the result as a pipe table followed by the row count.
func (mw *MarkdownResultWriter) Write(w io.Writer, res *store.Result, query string) error {
	if len(res.Columns) > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.Style().Format.Header = text.FormatDefault
		tw.AppendHeader(headerRow(res.Columns))
		for _, row := range res.Rows {
			tw.AppendRow(valueRow(row))
		}
		tw.RenderMarkdown()
	}

	fmt.Fprintf(w, "\nRows returned: %d\n", res.RowCount())
	return nil
}
