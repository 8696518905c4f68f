// Package nametag parses and rewrites filenames that carry tags in a
// bracketed segment, such as "report[draft urgent].txt".
//
// A NameTag is built once from raw bytes (filenames are not guaranteed to
// be valid text on every platform), mutated through AddTag/RemoveTag/
// ClearTags, and serialised back with Bytes or String. Everything outside
// the tag segment is preserved byte-for-byte; the tag segment itself is
// rewritten canonically: tags deduplicated, sorted ascending by byte value,
// joined with single spaces.
//
// The package performs no filesystem I/O. Callers own the rename.
package nametag

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by String when the serialised name is not
// valid UTF-8. The NameTag itself remains valid; use Bytes for the raw form.
var ErrInvalidEncoding = errors.New("invalid encoding")

// NameTag is a filename split around its tag segment.
//
// The prefix/suffix spans are fixed at parse time; mutating the tag set
// never re-scans them. A NameTag is not safe for concurrent use, but
// instances share no state, so one per goroutine needs no locking.
type NameTag struct {
	prefix []byte
	suffix []byte
	tags   tagSet
}

// Parse builds a NameTag from raw filename bytes.
//
// If input contains a balanced bracket pair, the outermost such span is the
// tag segment: its contents are split into tags and the surrounding bytes
// become the prefix and suffix. Inner brackets inside the segment act as
// tag separators and are dropped, so "a[x [c b]].txt" yields {b, c, x}.
//
// An unclosed "[" is not a tag segment; the whole input is preserved
// verbatim. With no segment at all, the insertion point for future tags is
// the first "." byte, or the end of the name if there is none.
func Parse(input []byte) *NameTag {
	nt := &NameTag{}
	if upper, lower, ok := bracketSpan(input); ok {
		nt.prefix = bytes.Clone(input[:upper])
		nt.suffix = bytes.Clone(input[lower:])
		nt.tags = parseTags(input[upper+1 : lower-1])
		return nt
	}

	split := bytes.IndexByte(input, extensionDot)
	if split < 0 {
		split = len(input)
	}
	nt.prefix = bytes.Clone(input[:split])
	nt.suffix = bytes.Clone(input[split:])
	return nt
}

// ParsePath builds a NameTag from a filesystem path. Only the final path
// element is scanned for a tag segment; the directory part is carried in
// the prefix untouched, so brackets or dots in parent directories never
// influence the parse.
func ParsePath(path string) *NameTag {
	dir, base := filepath.Split(path)
	nt := Parse([]byte(base))
	if dir != "" {
		nt.prefix = append([]byte(dir), nt.prefix...)
	}
	return nt
}

// bracketSpan locates the outermost balanced bracket span in input,
// returning the index of its opening bracket and the index just past its
// closing bracket. A "]" at depth zero is a literal byte, not a close.
func bracketSpan(input []byte) (upper, lower int, ok bool) {
	depth := 0
	for i, b := range input {
		switch b {
		case openBracket:
			if depth == 0 {
				upper = i
			}
			depth++
		case closeBracket:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return upper, i + 1, true
			}
		}
	}
	return 0, 0, false
}

// parseTags splits a bracket segment into its tag set. Separator runs
// collapse, and bracket bytes from nested pairs separate like whitespace,
// flattening the segment into plain tags.
func parseTags(segment []byte) tagSet {
	var set tagSet
	start := -1
	for i, b := range segment {
		if isSeparator(b) || b == openBracket || b == closeBracket {
			if start >= 0 {
				set.insert(string(segment[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		set.insert(string(segment[start:]))
	}
	return set
}

// AddTag inserts tag into the set. Adding a present tag or an empty tag is
// a no-op; the operation never fails.
func (n *NameTag) AddTag(tag string) {
	n.tags.insert(tag)
}

// RemoveTag deletes tag from the set. Removing an absent tag is a no-op.
func (n *NameTag) RemoveTag(tag string) {
	n.tags.remove(tag)
}

// ClearTags empties the tag set. The prefix and suffix are untouched, so a
// cleared name serialises to the original minus its bracket segment.
func (n *NameTag) ClearTags() {
	n.tags.clear()
}

// HasTag reports whether tag is present.
func (n *NameTag) HasTag(tag string) bool {
	return n.tags.contains(tag)
}

// Tags returns a restartable iterator over the tags in ascending byte
// order. It never mutates the NameTag.
func (n *NameTag) Tags() iter.Seq[string] {
	return n.tags.all()
}

// Len returns the number of tags.
func (n *NameTag) Len() int {
	return len(n.tags.members)
}

// Bytes serialises the name. With tags present the output is
// prefix + "[" + tags joined by single spaces + "]" + suffix; with none it
// is prefix + suffix, dropping any empty bracket pair the input carried.
// Bytes is pure: the NameTag remains usable and re-serialisable.
func (n *NameTag) Bytes() []byte {
	out := make([]byte, 0, len(n.prefix)+len(n.suffix)+n.tags.encodedLen())
	out = append(out, n.prefix...)
	if len(n.tags.members) > 0 {
		out = append(out, openBracket)
		for i, t := range n.tags.members {
			if i > 0 {
				out = append(out, tagJoin)
			}
			out = append(out, t...)
		}
		out = append(out, closeBracket)
	}
	return append(out, n.suffix...)
}

// String serialises the name as text. Filenames are not guaranteed to be
// representable as text, so this is fallible: non-UTF-8 output returns an
// error wrapping ErrInvalidEncoding and the caller can fall back to Bytes.
func (n *NameTag) String() (string, error) {
	out := n.Bytes()
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: name is not valid UTF-8", ErrInvalidEncoding)
	}
	return string(out), nil
}
