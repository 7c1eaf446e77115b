package output

import (
	"encoding/csv"
	"io"

	"github.com/MatthewFay/git-query/internal/store"
)

// CSVResultWriter writes query results as CSV with a header row.
type CSVResultWriter struct{}

// Write outputs the result as CSV. Statements without a result set
// produce no output at all.
func (cw *CSVResultWriter) Write(w io.Writer, res *store.Result, query string) error {
	if len(res.Columns) == 0 {
		return nil
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(res.Columns); err != nil {
		return err
	}

	record := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
