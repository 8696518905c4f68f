// tagset.go implements the ordered set backing a NameTag's tags.
//
// Design: a sorted slice with binary-search insertion rather than a map.
// Serialisation and Tags() need ascending byte order on every read; keeping
// the members sorted at insert time makes iteration a plain walk with no
// sort step, and Go string comparison is already byte-wise lexicographic.

package nametag

import (
	"iter"
	"slices"
)

// tagSet is a deduplicated set of tags held in ascending byte order.
// The zero value is an empty set ready for use.
type tagSet struct {
	members []string
}

// insert adds tag to the set. Duplicates and empty tags are no-ops.
func (s *tagSet) insert(tag string) {
	if tag == "" {
		return
	}
	i, found := slices.BinarySearch(s.members, tag)
	if found {
		return
	}
	s.members = slices.Insert(s.members, i, tag)
}

// remove deletes tag from the set. Absent tags are a no-op.
func (s *tagSet) remove(tag string) {
	i, found := slices.BinarySearch(s.members, tag)
	if !found {
		return
	}
	s.members = slices.Delete(s.members, i, i+1)
}

// clear empties the set.
func (s *tagSet) clear() {
	s.members = nil
}

// contains reports whether tag is in the set.
func (s *tagSet) contains(tag string) bool {
	_, found := slices.BinarySearch(s.members, tag)
	return found
}

// all returns a restartable iterator over the members in ascending order.
func (s *tagSet) all() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, t := range s.members {
			if !yield(t) {
				return
			}
		}
	}
}

// encodedLen returns the byte length of the serialised bracket segment,
// or 0 for an empty set (empty sets serialise to nothing).
func (s *tagSet) encodedLen() int {
	if len(s.members) == 0 {
		return 0
	}
	n := 2 + len(s.members) - 1 // brackets plus joins
	for _, t := range s.members {
		n += len(t)
	}
	return n
}
