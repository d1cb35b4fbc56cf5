// Package reconcile implements field-granular merging of suggested edits
// into a contact profile document. Paths address nested JSON values with
// dot and bracket-index segments ("family_members.0.name",
// "family_members[0].name"). Merge is a pure function over decoded JSON
// values; it never mutates its input document.
package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/warmline/warmline-backend/internal/domain"
)

// Segment is one step of a parsed field path. Key always holds the raw
// segment text; Index is valid only when IsIndex is true. An index segment
// applied to an object falls back to Key, since JSON object keys may be
// numeric strings.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// ParsePath splits a field path into segments. Supported forms are dotted
// keys, dotted numeric indices, and bracketed indices: "a.b", "a.0.b",
// "a[0].b". Returns a ValidationError for empty or malformed paths.
func ParsePath(path string) ([]Segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.NewValidationError("field_path", "required")
	}

	var segs []Segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, domain.NewValidationError("field_path", fmt.Sprintf("empty segment in %q", path))
		}
		rest := part
		for {
			open := strings.Index(rest, "[")
			if open == -1 {
				segs = append(segs, makeSegment(rest))
				break
			}
			if open > 0 {
				segs = append(segs, makeSegment(rest[:open]))
			}
			closeIdx := strings.Index(rest, "]")
			if closeIdx < open+1 {
				return nil, domain.NewValidationError("field_path", fmt.Sprintf("unbalanced brackets in %q", path))
			}
			digits := rest[open+1 : closeIdx]
			idx, err := strconv.Atoi(digits)
			if err != nil || idx < 0 {
				return nil, domain.NewValidationError("field_path", fmt.Sprintf("invalid index %q in %q", digits, path))
			}
			segs = append(segs, Segment{Key: digits, Index: idx, IsIndex: true})
			rest = rest[closeIdx+1:]
			if rest == "" {
				break
			}
			if rest[0] != '[' {
				return nil, domain.NewValidationError("field_path", fmt.Sprintf("malformed segment %q in %q", part, path))
			}
		}
	}
	return segs, nil
}

func makeSegment(raw string) Segment {
	if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 {
		return Segment{Key: raw, Index: idx, IsIndex: true}
	}
	return Segment{Key: raw}
}
