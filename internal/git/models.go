package git

import "time"

// Commit is one node of the repository history graph.
type Commit struct {
	// Hash is the full 40-character hex object id.
	Hash string
	// Author is the author's display name; empty when the commit has none.
	Author string
	// When is the committer timestamp.
	When time.Time
	// Message is the full commit message, trailing newline preserved.
	Message string
}

// TagKind discriminates the two shapes a tag reference can take.
type TagKind int

const (
	// TagAnnotated is a tag stored as its own object with metadata.
	TagAnnotated TagKind = iota
	// TagLightweight is a bare reference pointing straight at an object.
	TagLightweight
)

func (k TagKind) String() string {
	if k == TagLightweight {
		return "lightweight"
	}
	return "annotated"
}

// Tag is one tag reference of either kind. For lightweight tags Hash
// equals TargetHash, TargetType is always "commit", and Tagger, TaggedAt
// and Message stay zero. For annotated tags Message is the raw tag
// message with any trailing signature block intact.
type Tag struct {
	Kind       TagKind
	Hash       string
	Name       string
	TargetHash string
	TargetType string
	Tagger     string    // empty when the tag carries no tagger
	TaggedAt   time.Time // zero when the tag carries no timestamp
	Message    string
}

// BranchKind classifies a branch reference by namespace.
type BranchKind int

const (
	BranchLocal BranchKind = iota
	BranchRemote
)

func (k BranchKind) String() string {
	if k == BranchRemote {
		return "remote"
	}
	return "local"
}

// Branch is a named pointer into the commit graph. Head is nil when the
// reference cannot be resolved to a commit.
type Branch struct {
	Name string
	Kind BranchKind
	Head *Commit
}
