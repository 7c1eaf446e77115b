// Package ingest translates repository objects into rows of the
// relational schema. It owns traversal order, identifier truncation,
// duplicate policy and the filters that decide which references land in
// the store.
package ingest

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/MatthewFay/git-query/internal/git"
	"github.com/MatthewFay/git-query/internal/logging"
	"github.com/MatthewFay/git-query/internal/store"
)

// Options tunes an ingestion run. The zero value ingests everything.
type Options struct {
	// TagFilters and BranchFilters are doublestar patterns matched
	// against short reference names. Empty means no filtering. Commits
	// are never filtered.
	TagFilters    []string
	BranchFilters []string
}

// InitializeStore builds a fresh in-memory store from src: schema first,
// then commit ancestry from the checked-out branch tip, then tags, then
// branches. Any failure aborts the whole initialization and closes the
// partially filled store.
func InitializeStore(src git.Source, opts Options) (*store.Store, error) {
	st, err := store.Open()
	if err != nil {
		return nil, err
	}

	if err := populate(st, src, opts); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func populate(st *store.Store, src git.Source, opts Options) error {
	if err := st.Initialize(); err != nil {
		return err
	}

	walk, err := src.WalkHead()
	if err != nil {
		return err
	}
	if err := insertAncestry(st, walk); err != nil {
		return err
	}

	if err := insertTags(st, src, opts); err != nil {
		return err
	}

	return insertBranches(st, src, opts)
}

// ExtendHistory resolves ref to a single commit and ingests that commit's
// ancestry with the same duplicate-tolerant policy as the initial walk.
// A resolution failure leaves the store untouched; a mid-walk failure
// keeps the rows already inserted, and a retry converges because every
// insert is idempotent.
func ExtendHistory(st *store.Store, src git.Source, ref string) error {
	commit, err := src.ResolveCommitPrefix(ref)
	if err != nil {
		return err
	}

	walk, err := src.WalkFrom(commit.Hash)
	if err != nil {
		return err
	}
	return insertAncestry(st, walk)
}

// insertAncestry drains one commit walk into the commits table.
func insertAncestry(st *store.Store, walk git.CommitIter) error {
	defer walk.Close()

	var inserted, skipped int
	err := walk.ForEach(func(c git.Commit) error {
		ok, err := st.InsertCommit(commitRow(c))
		if err != nil {
			return err
		}
		if ok {
			inserted++
		} else {
			skipped++
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.Default().Info("ingested commit ancestry", "inserted", inserted, "skipped", skipped)
	return nil
}

// insertTags walks every tag reference. The visitor only carries a
// continue/stop boolean, so an insert failure is captured on the side
// before stopping and re-raised once the walk returns; a bare stop must
// read as neither success nor a reader failure.
func insertTags(st *store.Store, src git.Source, opts Options) error {
	var insertErr error
	count := 0

	err := src.ForEachTag(func(t git.Tag) bool {
		if !matchesAny(opts.TagFilters, t.Name) {
			logging.Default().Debug("tag filtered out", "name", t.Name)
			return true
		}
		if err := st.InsertTag(tagRow(t)); err != nil {
			insertErr = err
			return false
		}
		count++
		return true
	})
	if err != nil {
		return err
	}
	if insertErr != nil {
		return insertErr
	}

	logging.Default().Info("ingested tags", "count", count)
	return nil
}

func insertBranches(st *store.Store, src git.Source, opts Options) error {
	branches, err := src.Branches()
	if err != nil {
		return err
	}

	count := 0
	for _, b := range branches {
		if !matchesAny(opts.BranchFilters, b.Name) {
			logging.Default().Debug("branch filtered out", "name", b.Name)
			continue
		}
		if err := st.InsertBranch(branchRow(b)); err != nil {
			return err
		}
		count++
	}

	logging.Default().Info("ingested branches", "count", count)
	return nil
}

// matchesAny reports whether name matches at least one pattern. No
// patterns means everything matches. A malformed pattern matches nothing.
func matchesAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
