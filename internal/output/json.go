package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/MatthewFay/git-query/internal/store"
)

// JSONResultWriter writes query results as a JSON document.
type JSONResultWriter struct{}

// JSONResult is the JSON output structure for one statement.
type JSONResult struct {
	Query   string           `json:"query"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Count   int              `json:"count"`
}

// Write outputs the result as indented JSON. Row values keep their
// driver types, so numbers stay numbers and NULLs become JSON null.
func (jw *JSONResultWriter) Write(w io.Writer, res *store.Result, query string) error {
	rows := make([]map[string]any, len(res.Rows))
	for i, row := range res.Rows {
		m := make(map[string]any, len(res.Columns))
		for j, col := range res.Columns {
			m[col] = jsonValue(row[j])
		}
		rows[i] = m
	}

	doc := JSONResult{
		Query:   query,
		Columns: res.Columns,
		Rows:    rows,
		Count:   res.RowCount(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func jsonValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return "Blob"
	case string:
		return strings.ReplaceAll(x, "\r\n", "\n")
	default:
		return v
	}
}
