package ingest

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MatthewFay/git-query/internal/git"
	"github.com/MatthewFay/git-query/internal/store"
)

// shortIDLen is how many hex characters of an object id survive into the
// store. Short ids keep query results readable; collisions inside one
// repository are accepted.
const shortIDLen = 7

// dateLayout is the stored timestamp form. Fixed-width UTC so that
// lexicographic order on the TEXT column matches time order.
const dateLayout = "2006-01-02 15:04:05 UTC"

// pgpMarker opens a detached signature block inside a tag message.
const pgpMarker = "-----BEGIN PGP SIGNATURE-----"

// ShortID truncates a full object id to its stored form.
func ShortID(hash string) string {
	if len(hash) <= shortIDLen {
		return hash
	}
	return hash[:shortIDLen]
}

// FormatDate renders t as the schema's UTC date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// StripSignature drops a trailing PGP signature block from a tag message:
// everything from the marker on is removed and surrounding whitespace
// trimmed. A message without the marker passes through unchanged. The
// operation is idempotent.
func StripSignature(msg string) string {
	i := strings.Index(msg, pgpMarker)
	if i < 0 {
		return msg
	}
	return strings.TrimSpace(msg[:i])
}

func commitRow(c git.Commit) store.CommitRow {
	return store.CommitRow{
		ID:      ShortID(c.Hash),
		Author:  optionalName(c.Author),
		Date:    FormatDate(c.When),
		Message: c.Message,
	}
}

// tagRow flattens both tag shapes into the tags schema. Lightweight tags
// store id == target_id and NULL metadata; annotated tags always store a
// message, stripped of any signature block.
func tagRow(t git.Tag) store.TagRow {
	row := store.TagRow{
		ID:       ShortID(t.Hash),
		Name:     optionalName(t.Name),
		TargetID: ShortID(t.TargetHash),
	}
	if t.TargetType != "" {
		targetType := t.TargetType
		row.TargetType = &targetType
	}

	if t.Kind == git.TagLightweight {
		return row
	}

	if t.Tagger != "" {
		tagger := t.Tagger
		row.Tagger = &tagger
	}
	if !t.TaggedAt.IsZero() {
		date := FormatDate(t.TaggedAt)
		row.Date = &date
	}
	msg := StripSignature(t.Message)
	row.Message = &msg
	return row
}

func branchRow(b git.Branch) store.BranchRow {
	row := store.BranchRow{
		Name: optionalName(b.Name),
		Type: b.Kind.String(),
	}
	if b.Head != nil {
		id := ShortID(b.Head.Hash)
		date := FormatDate(b.Head.When)
		row.HeadCommitID = &id
		row.HeadCommitDate = &date
	}
	return row
}

// optionalName maps absent or non-UTF8 names to NULL. Reference names and
// signatures are raw bytes on disk and nothing guarantees their encoding.
func optionalName(name string) *string {
	if name == "" || !utf8.ValidString(name) {
		return nil
	}
	return &name
}
