// Package git reads commit ancestry, tags and branches from a local Git
// repository. It is a read-only adapter over go-git; nothing in this
// package mutates the repository.
package git

import (
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

const (
	// minPrefixLen matches git's minimum abbreviation length.
	minPrefixLen = 4
	fullHashLen  = 40
)

// Reader provides read-only access to a repository's object graph.
type Reader struct {
	repo *gogit.Repository
	path string
}

// Open opens the repository rooted at path. The path must be the
// repository root, not a subdirectory of the working tree.
func Open(path string) (*Reader, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository",
			goerr.T(errs.TagGit), goerr.V("path", path))
	}
	return &Reader{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened from.
func (r *Reader) Path() string {
	return r.path
}

// WalkHead starts an ancestry walk at the tip of the checked-out branch.
func (r *Reader) WalkHead() (CommitIter, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve HEAD", goerr.T(errs.TagGit))
	}
	return r.walk(ref.Hash())
}

// WalkFrom starts an ancestry walk at the given full commit hash.
func (r *Reader) WalkFrom(hash string) (CommitIter, error) {
	return r.walk(plumbing.NewHash(hash))
}

func (r *Reader) walk(from plumbing.Hash) (CommitIter, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start history walk",
			goerr.T(errs.TagGit), goerr.V("from", from.String()))
	}
	return &commitIter{iter: iter}, nil
}

// ResolveCommitPrefix resolves a possibly-abbreviated hex object id to the
// single commit it denotes. The scan covers objects of every kind, so a
// prefix shared by a commit and a blob counts as ambiguous, the same way
// git rev-parse treats it.
func (r *Reader) ResolveCommitPrefix(text string) (Commit, error) {
	prefix := strings.ToLower(text)
	if !validHexPrefix(prefix) {
		return Commit{}, goerr.Wrap(errs.ErrInvalidPrefix,
			"commit id must be 4 to 40 hex characters",
			goerr.T(errs.TagGit), goerr.V("input", text))
	}

	if len(prefix) == fullHashLen {
		commit, err := r.repo.CommitObject(plumbing.NewHash(prefix))
		if err != nil {
			return Commit{}, goerr.Wrap(errs.ErrNotFound, "no commit with this id",
				goerr.T(errs.TagGit), goerr.V("id", prefix))
		}
		return commitFromObject(commit), nil
	}

	matches, err := r.matchPrefix(prefix)
	if err != nil {
		return Commit{}, err
	}

	switch len(matches) {
	case 0:
		return Commit{}, goerr.Wrap(errs.ErrNotFound, "no object matches prefix",
			goerr.T(errs.TagGit), goerr.V("prefix", prefix))
	case 1:
		commit, err := r.repo.CommitObject(matches[0])
		if err != nil {
			return Commit{}, goerr.Wrap(errs.ErrNotFound, "object is not a commit",
				goerr.T(errs.TagGit), goerr.V("id", matches[0].String()))
		}
		return commitFromObject(commit), nil
	default:
		return Commit{}, goerr.Wrap(errs.ErrAmbiguousPrefix,
			"prefix matches multiple objects",
			goerr.T(errs.TagGit), goerr.V("prefix", prefix))
	}
}

// matchPrefix scans every stored object for ids starting with prefix. It
// stops at the second distinct match; callers only care whether the
// prefix is unique. The same object can show up both loose and packed,
// so duplicates are collapsed.
func (r *Reader) matchPrefix(prefix string) ([]plumbing.Hash, error) {
	iter, err := r.repo.Storer.IterEncodedObjects(plumbing.AnyObject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enumerate objects", goerr.T(errs.TagGit))
	}
	defer iter.Close()

	var matches []plumbing.Hash
	err = iter.ForEach(func(obj plumbing.EncodedObject) error {
		hash := obj.Hash()
		if !strings.HasPrefix(hash.String(), prefix) {
			return nil
		}
		if len(matches) == 1 && matches[0] == hash {
			return nil
		}
		matches = append(matches, hash)
		if len(matches) > 1 {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "object scan failed", goerr.T(errs.TagGit))
	}
	return matches, nil
}

func validHexPrefix(s string) bool {
	if len(s) < minPrefixLen || len(s) > fullHashLen {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func commitFromObject(c *object.Commit) Commit {
	return Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		When:    c.Committer.When,
		Message: c.Message,
	}
}

// commitIter adapts go-git's commit iterator to the CommitIter contract.
type commitIter struct {
	iter object.CommitIter
}

// ForEach drains the walk. An error returned by fn aborts the walk and
// comes back unchanged; only iteration failures get the git tag.
func (it *commitIter) ForEach(fn func(Commit) error) error {
	var fnErr error
	err := it.iter.ForEach(func(c *object.Commit) error {
		if err := fn(commitFromObject(c)); err != nil {
			fnErr = err
			return storer.ErrStop
		}
		return nil
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return goerr.Wrap(err, "history walk failed", goerr.T(errs.TagGit))
	}
	return nil
}

func (it *commitIter) Close() {
	it.iter.Close()
}
