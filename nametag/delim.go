// delim.go defines the delimiter bytes the codec is built around.
//
// Separated from nametag.go so every parsing and serialisation rule draws
// on one set of named constants rather than scattered byte literals.

package nametag

const (
	// openBracket and closeBracket delimit the tag segment within a name.
	openBracket  = '['
	closeBracket = ']'

	// extensionDot marks the insertion point for names without a tag
	// segment: tags are inserted before the first dot, mirroring the
	// convention that everything after it is a file extension.
	extensionDot = '.'

	// tagJoin separates tags in serialised output. Always a single space;
	// comma is accepted on input as a convenience but never written back.
	tagJoin = ' '
)

// isSeparator reports whether b splits tags inside a bracket segment.
// Runs of separators collapse: they never produce empty tags.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}
