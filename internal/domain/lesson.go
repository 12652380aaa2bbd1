package domain

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Lesson is the canonical representation of a lesson inside this tool.
// The provider maps API responses into this model; the fetcher and the
// store consume it.
type Lesson struct {
	ID       string
	Title    string
	CourseID string

	// Raw is the lesson record exactly as the API returned it.
	// It is persisted verbatim as lesson metadata.
	Raw json.RawMessage
}

// ContentItem is one downloadable unit belonging to a lesson.
type ContentItem struct {
	Index int

	// SourceURL is the direct download URL, empty when the item has none.
	SourceURL string

	// ContentHTML is embedded HTML that may reference further assets.
	ContentHTML string

	Raw json.RawMessage
}

// DirName builds the output directory name for a lesson: <Safe_Title>_<ID>.
// A title that sanitizes to nothing falls back to "Lesson".
func (l Lesson) DirName() string {
	title := SafeTitle(l.Title)
	if title == "" {
		title = "Lesson"
	}
	return title + "_" + l.ID
}

// SafeTitle reduces a lesson title to a filesystem-safe slug: letters,
// digits, '-' and '_' are kept, runs of anything else collapse to a
// single '_'. Leading/trailing separators are trimmed.
func SafeTitle(title string) string {
	var b strings.Builder
	lastSep := true
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
			lastSep = false
		default:
			if !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
