package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MatthewFay/git-query/internal/store"
)

// traverseTip nudges toward the traverse command when a commits query
// comes back empty, which usually means the wanted history is not
// ingested yet.
const traverseTip = "Tip: use the `traverse <commit id>` command to insert commit history"

// ConsoleResultWriter renders results as a rounded box table followed by
// the row count.
type ConsoleResultWriter struct {
	// MaxWidth caps rendered rows at this many characters; 0 lets rows
	// grow to their content.
	MaxWidth int
}

// Write outputs the result as a table. Statements without a result set
// skip the box and only print the count.
func (cw *ConsoleResultWriter) Write(w io.Writer, res *store.Result, query string) error {
	if len(res.Columns) > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleRounded)
		// Column names come straight from the statement; keep their case.
		tw.Style().Format.Header = text.FormatDefault
		if cw.MaxWidth > 0 {
			tw.SetAllowedRowLength(cw.MaxWidth)
		}
		tw.AppendHeader(headerRow(res.Columns))
		for _, row := range res.Rows {
			tw.AppendRow(valueRow(row))
		}
		tw.Render()
	}

	fmt.Fprintf(w, "Rows returned: %d\n", res.RowCount())

	if res.RowCount() == 0 && strings.Contains(query, "commits") {
		color.New(color.FgYellow).Fprintln(w, traverseTip)
	}
	return nil
}

func headerRow(cols []string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

func valueRow(values []any) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = FormatValue(v)
	}
	return row
}
