// tag.go implements tag string validation.
//
// The codec itself is total: it will store any non-empty tag it is given.
// Validation lives here, at the CLI boundary, because a tag containing the
// codec's own delimiter bytes would not survive a round trip - it would be
// split back into several tags on the next parse.
//
// Design: Minimal validation beyond the delimiter rule. Tags are
// user-defined labels; overly restrictive rules would limit legitimate
// use cases.

package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTag is the sentinel wrapped by every validation failure,
// checked with errors.Is.
var ErrInvalidTag = errors.New("invalid tag")

// tagDelimiters are the bytes the codec treats as structure: brackets,
// tag separators, and NUL (never valid in a filename).
const tagDelimiters = "[]\x00 \t\n\r,"

// Tag validates a tag string.
//
// Validation rules:
//   - Empty tags rejected (meaningless label)
//   - Delimiter bytes rejected (brackets, whitespace, comma, NUL) - a tag
//     carrying these would change meaning when the filename is re-parsed
func Tag(t string) error {
	if t == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if i := strings.IndexAny(t, tagDelimiters); i >= 0 {
		return fmt.Errorf("%w: %q contains reserved character %q", ErrInvalidTag, t, t[i])
	}
	return nil
}

// Tags validates each tag in a slice, reporting the first failure.
func Tags(tags []string) error {
	for _, t := range tags {
		if err := Tag(t); err != nil {
			return err
		}
	}
	return nil
}
