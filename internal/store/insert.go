package store

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// CommitRow is one row of the commits table. Pointer fields become NULL.
type CommitRow struct {
	ID      string
	Author  *string
	Date    string
	Message string
}

// TagRow is one row of the tags table. Lightweight tags leave tagger,
// date and message nil.
type TagRow struct {
	ID         string
	Name       *string
	TargetID   string
	TargetType *string
	Tagger     *string
	Date       *string
	Message    *string
}

// BranchRow is one row of the branches table. Head fields are nil when
// the branch reference did not resolve to a commit.
type BranchRow struct {
	Name           *string
	Type           string
	HeadCommitID   *string
	HeadCommitDate *string
}

// InsertCommit inserts a commit row. A duplicate id is silently ignored
// and the first-seen row wins; the boolean reports whether a row was
// actually added.
func (s *Store) InsertCommit(row CommitRow) (bool, error) {
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO commits (id, author, date, message) VALUES (?, ?, ?, ?)`,
		row.ID, row.Author, row.Date, row.Message,
	)
	if err != nil {
		return false, goerr.Wrap(err, "failed to insert commit",
			goerr.T(errs.TagStore), goerr.V("id", row.ID))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, goerr.Wrap(err, "failed to read insert result", goerr.T(errs.TagStore))
	}
	return n > 0, nil
}

// InsertTag inserts a tag row. Unlike commits there is no duplicate
// tolerance: a colliding id is a constraint failure.
func (s *Store) InsertTag(row TagRow) error {
	_, err := s.db.Exec(
		`INSERT INTO tags (id, name, target_id, target_type, tagger, date, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Name, row.TargetID, row.TargetType, row.Tagger, row.Date, row.Message,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert tag",
			goerr.T(errs.TagStore), goerr.V("id", row.ID))
	}
	return nil
}

// InsertBranch appends a branch row. The table carries no uniqueness;
// a local and a remote branch may share a name.
func (s *Store) InsertBranch(row BranchRow) error {
	_, err := s.db.Exec(
		`INSERT INTO branches (name, type, head_commit_id, head_commit_date) VALUES (?, ?, ?, ?)`,
		row.Name, row.Type, row.HeadCommitID, row.HeadCommitDate,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert branch",
			goerr.T(errs.TagStore), goerr.V("name", row.Name))
	}
	return nil
}
