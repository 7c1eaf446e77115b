// Package store owns the in-memory SQLite database that repository
// history is loaded into. The database lives exactly as long as the
// process; closing the store discards everything.
package store

import (
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/MatthewFay/git-query/internal/errs"
)

// Store wraps the SQLite connection holding the session's history tables.
type Store struct {
	db *sql.DB
}

// Open creates a fresh, empty in-memory database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open in-memory database", goerr.T(errs.TagStore))
	}

	// Each pooled connection would get its own private ":memory:"
	// database; a single connection keeps every statement on the same one.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close releases the database and with it all ingested history.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for ad-hoc statements.
func (s *Store) DB() *sql.DB {
	return s.db
}
