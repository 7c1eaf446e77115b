// Package errs defines the error taxonomy shared across git-query. Errors
// are tagged by the subsystem they came from so the prompt can label a
// failure as a Git problem or a SQL problem without inspecting its text.
package errs

import "github.com/m-mizutani/goerr/v2"

// Subsystem tags. Everything surfaced by the repository reader carries
// TagGit; everything surfaced by the SQL store carries TagStore.
var (
	TagGit   = goerr.NewTag("git")
	TagStore = goerr.NewTag("store")
)

// Sentinels for commit id resolution. Callers distinguish a prefix that
// matches nothing from one that matches several objects.
var (
	ErrNotFound        = goerr.New("object not found", goerr.T(TagGit))
	ErrAmbiguousPrefix = goerr.New("ambiguous object id prefix", goerr.T(TagGit))
	ErrInvalidPrefix   = goerr.New("invalid object id prefix", goerr.T(TagGit))
)

// IsGit reports whether err originated in the repository reader.
func IsGit(err error) bool {
	return goerr.HasTag(err, TagGit)
}

// IsStore reports whether err originated in the SQL store.
func IsStore(err error) bool {
	return goerr.HasTag(err, TagStore)
}

// Render returns the user-facing one-liner for err, prefixed with the
// subsystem it came from.
func Render(err error) string {
	switch {
	case IsGit(err):
		return "Git error: " + err.Error()
	case IsStore(err):
		return "SQL error: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
