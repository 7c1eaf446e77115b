package store

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// Result is the outcome of one ad-hoc statement: column names plus rows
// of driver values (int64, float64, string, []byte or nil).
type Result struct {
	Columns []string
	Rows    [][]any
}

// RowCount returns the number of rows the statement produced.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

// Query executes one arbitrary SQL statement and materializes its rows.
// Statements without a result set, DDL included, come back with no
// columns and no rows.
func (s *Store) Query(text string) (*Result, error) {
	rows, err := s.db.Query(text)
	if err != nil {
		return nil, goerr.Wrap(err, "query failed", goerr.T(errs.TagStore))
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read column names", goerr.T(errs.TagStore))
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, goerr.Wrap(err, "failed to scan row", goerr.T(errs.TagStore))
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "row iteration failed", goerr.T(errs.TagStore))
	}
	return res, nil
}
