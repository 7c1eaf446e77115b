package git

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// MockSource is a mock implementation of Source for testing. It serves
// predefined commits, tags and branches without touching a repository.
type MockSource struct {
	// Commits are returned by WalkHead in order; they also back prefix
	// resolution.
	Commits []Commit
	// Walks maps a full hash to the ancestry WalkFrom serves for it.
	// A hash without an entry falls back to Commits.
	Walks map[string][]Commit
	// Tags are visited by ForEachTag in order.
	Tags []Tag
	// BranchList is returned by Branches.
	BranchList []Branch

	// TagVisits counts how many tags the last ForEachTag run visited.
	TagVisits int

	// Err, when set, is returned by every method.
	Err error
}

// WalkHead returns an iterator over the predefined commits.
func (m *MockSource) WalkHead() (CommitIter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &sliceIter{commits: m.Commits}, nil
}

// WalkFrom returns the ancestry registered for hash, or all commits.
func (m *MockSource) WalkFrom(hash string) (CommitIter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if commits, ok := m.Walks[hash]; ok {
		return &sliceIter{commits: commits}, nil
	}
	return &sliceIter{commits: m.Commits}, nil
}

// ResolveCommitPrefix scans the predefined commits by hash prefix,
// reproducing the unique/ambiguous/missing contract of the real reader.
func (m *MockSource) ResolveCommitPrefix(text string) (Commit, error) {
	if m.Err != nil {
		return Commit{}, m.Err
	}

	var matches []Commit
	for _, c := range m.Commits {
		if strings.HasPrefix(c.Hash, strings.ToLower(text)) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return Commit{}, goerr.Wrap(errs.ErrNotFound, "no object matches prefix",
			goerr.T(errs.TagGit), goerr.V("prefix", text))
	case 1:
		return matches[0], nil
	default:
		return Commit{}, goerr.Wrap(errs.ErrAmbiguousPrefix, "prefix matches multiple objects",
			goerr.T(errs.TagGit), goerr.V("prefix", text))
	}
}

// ForEachTag visits the predefined tags until the visitor stops.
func (m *MockSource) ForEachTag(visit func(Tag) bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.TagVisits = 0
	for _, t := range m.Tags {
		m.TagVisits++
		if !visit(t) {
			break
		}
	}
	return nil
}

// Branches returns the predefined branch list.
func (m *MockSource) Branches() ([]Branch, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.BranchList, nil
}

type sliceIter struct {
	commits []Commit
}

func (it *sliceIter) ForEach(fn func(Commit) error) error {
	for _, c := range it.commits {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (it *sliceIter) Close() {}
