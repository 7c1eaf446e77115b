package git

// Source is the read-only repository surface the ingestion engine
// consumes. Reader is the production implementation; tests substitute
// MockSource.
type Source interface {
	// WalkHead starts an ancestry walk at the checked-out branch tip.
	WalkHead() (CommitIter, error)
	// WalkFrom starts an ancestry walk at the given full commit hash.
	WalkFrom(hash string) (CommitIter, error)
	// ResolveCommitPrefix resolves an abbreviated object id to the single
	// commit it denotes, failing on unknown or ambiguous prefixes.
	ResolveCommitPrefix(text string) (Commit, error)
	// ForEachTag visits every tag reference until the visitor returns
	// false.
	ForEachTag(visit func(Tag) bool) error
	// Branches lists local and remote-tracking branches.
	Branches() ([]Branch, error)
}

// CommitIter is a lazy, one-shot traversal of commit ancestry. Every
// commit reachable from the start point is visited exactly once.
type CommitIter interface {
	// ForEach drains the walk. A non-nil error from fn aborts the walk
	// and is returned unchanged.
	ForEach(fn func(Commit) error) error
	// Close releases the walk; safe after a completed ForEach.
	Close()
}

// Compile-time interface conformance checks.
var (
	_ Source     = (*Reader)(nil)
	_ Source     = (*MockSource)(nil)
	_ CommitIter = (*commitIter)(nil)
	_ CommitIter = (*sliceIter)(nil)
)
