package store

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// Object ids are stored truncated, so TEXT columns everywhere; dates are
// pre-rendered UTC strings whose lexicographic order matches time order.
const schema = `
CREATE TABLE commits (
	id      TEXT PRIMARY KEY,
	author  TEXT,
	date    TEXT NOT NULL,
	message TEXT
);

CREATE TABLE tags (
	id          TEXT PRIMARY KEY,
	name        TEXT,
	target_id   TEXT NOT NULL,
	target_type TEXT,
	tagger      TEXT,
	date        TEXT,
	message     TEXT
);

CREATE TABLE branches (
	name             TEXT,
	type             TEXT,
	head_commit_id   TEXT,
	head_commit_date TEXT
);
`

// Initialize creates the history tables. The store must be freshly
// opened; creation is not idempotent.
func (s *Store) Initialize() error {
	if _, err := s.db.Exec(schema); err != nil {
		return goerr.Wrap(err, "failed to create schema", goerr.T(errs.TagStore))
	}
	return nil
}
