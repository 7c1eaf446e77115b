package git

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo wraps a throwaway repository with helpers to grow history.
// PlainInit names the default branch master.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
	seq  int
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	return &testRepo{t: t, dir: dir, repo: repo, wt: wt}
}

// commit writes a fresh file and commits it with the given message and
// committer time.
func (r *testRepo) commit(msg string, when time.Time) plumbing.Hash {
	r.t.Helper()
	r.seq++
	name := fmt.Sprintf("file%d.txt", r.seq)
	if err := os.WriteFile(filepath.Join(r.dir, name), []byte(msg), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", name, err)
	}
	if _, err := r.wt.Add(name); err != nil {
		r.t.Fatalf("add %s: %v", name, err)
	}
	hash, err := r.wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: when},
	})
	if err != nil {
		r.t.Fatalf("commit %q: %v", msg, err)
	}
	return hash
}

func (r *testRepo) lightweightTag(name string, target plumbing.Hash) {
	r.t.Helper()
	if _, err := r.repo.CreateTag(name, target, nil); err != nil {
		r.t.Fatalf("lightweight tag %s: %v", name, err)
	}
}

// annotatedTag creates a tag object and returns its hash, which is
// distinct from the target's.
func (r *testRepo) annotatedTag(name string, target plumbing.Hash, message string, when time.Time) plumbing.Hash {
	r.t.Helper()
	ref, err := r.repo.CreateTag(name, target, &gogit.CreateTagOptions{
		Tagger:  &object.Signature{Name: "dev", Email: "dev@example.com", When: when},
		Message: message,
	})
	if err != nil {
		r.t.Fatalf("annotated tag %s: %v", name, err)
	}
	return ref.Hash()
}

func (r *testRepo) setRef(name plumbing.ReferenceName, target plumbing.Hash) {
	r.t.Helper()
	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(name, target)); err != nil {
		r.t.Fatalf("set ref %s: %v", name, err)
	}
}

// storeBlob writes a loose blob into the object database without
// referencing it from any tree.
func (r *testRepo) storeBlob(content string) plumbing.Hash {
	r.t.Helper()
	obj := r.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	w, err := obj.Writer()
	if err != nil {
		r.t.Fatalf("blob writer: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		r.t.Fatalf("blob write: %v", err)
	}
	if err := w.Close(); err != nil {
		r.t.Fatalf("blob close: %v", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		r.t.Fatalf("blob store: %v", err)
	}
	return hash
}

func (r *testRepo) open() *Reader {
	r.t.Helper()
	reader, err := Open(r.dir)
	if err != nil {
		r.t.Fatalf("open reader: %v", err)
	}
	return reader
}
