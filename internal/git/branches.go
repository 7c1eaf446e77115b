package git

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// Branches lists local branches followed by remote-tracking ones. Head
// resolution is best-effort: a reference that cannot be peeled to a
// commit yields a Branch with a nil Head instead of failing the listing.
func (r *Reader) Branches() ([]Branch, error) {
	var out []Branch

	locals, err := r.repo.Branches()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enumerate local branches", goerr.T(errs.TagGit))
	}
	defer locals.Close()

	err = locals.ForEach(func(ref *plumbing.Reference) error {
		out = append(out, r.branchAt(ref, BranchLocal))
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "local branch enumeration failed", goerr.T(errs.TagGit))
	}

	refs, err := r.repo.References()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enumerate references", goerr.T(errs.TagGit))
	}
	defer refs.Close()

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() {
			return nil
		}
		out = append(out, r.branchAt(ref, BranchRemote))
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "remote branch enumeration failed", goerr.T(errs.TagGit))
	}

	return out, nil
}

func (r *Reader) branchAt(ref *plumbing.Reference, kind BranchKind) Branch {
	b := Branch{Name: ref.Name().Short(), Kind: kind}

	hash := ref.Hash()
	if ref.Type() == plumbing.SymbolicReference {
		// Remote HEADs are symbolic (origin/HEAD -> origin/main).
		resolved, err := r.repo.Reference(ref.Name(), true)
		if err != nil {
			return b
		}
		hash = resolved.Hash()
	}

	if commit, err := r.peelToCommit(hash); err == nil {
		c := commitFromObject(commit)
		b.Head = &c
	}
	return b
}

// peelToCommit follows tag objects until it reaches a commit, the way a
// branch pinned to an annotated tag still has a commit head.
func (r *Reader) peelToCommit(hash plumbing.Hash) (*object.Commit, error) {
	for {
		if commit, err := r.repo.CommitObject(hash); err == nil {
			return commit, nil
		}
		tag, err := r.repo.TagObject(hash)
		if err != nil {
			return nil, goerr.Wrap(err, "reference does not peel to a commit",
				goerr.T(errs.TagGit), goerr.V("id", hash.String()))
		}
		hash = tag.Target
	}
}
