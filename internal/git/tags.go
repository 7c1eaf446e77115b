package git

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/internal/errs"
)

// ForEachTag calls visit once per tag reference, annotated or lightweight,
// in reference iteration order. The visitor's boolean is a continue/stop
// signal: returning false aborts the remaining iteration without
// ForEachTag reporting an error. A caller aborting because of its own
// failure must capture that failure on its side before returning false.
func (r *Reader) ForEachTag(visit func(Tag) bool) error {
	iter, err := r.repo.Tags()
	if err != nil {
		return goerr.Wrap(err, "failed to enumerate tags", goerr.T(errs.TagGit))
	}
	defer iter.Close()

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if !visit(r.tagAt(ref)) {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "tag enumeration failed", goerr.T(errs.TagGit))
	}
	return nil
}

// tagAt builds the Tag model for one refs/tags reference. The reference
// hash is a tag object for annotated tags and the target itself for
// lightweight ones; which of the two it is decides the shape.
func (r *Reader) tagAt(ref *plumbing.Reference) Tag {
	if obj, err := r.repo.TagObject(ref.Hash()); err == nil {
		msg := obj.Message
		if obj.PGPSignature != "" {
			// go-git splits a trailing signature block out of the
			// message; reassemble the raw form, stripping is the
			// ingestion layer's call.
			msg += obj.PGPSignature
		}
		return Tag{
			Kind:       TagAnnotated,
			Hash:       obj.Hash.String(),
			Name:       obj.Name,
			TargetHash: obj.Target.String(),
			TargetType: obj.TargetType.String(),
			Tagger:     obj.Tagger.Name,
			TaggedAt:   obj.Tagger.When,
			Message:    msg,
		}
	}

	return Tag{
		Kind:       TagLightweight,
		Hash:       ref.Hash().String(),
		Name:       ref.Name().Short(),
		TargetHash: ref.Hash().String(),
		TargetType: plumbing.CommitObject.String(),
	}
}
