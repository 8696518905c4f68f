// Package glob provides glob pattern matching for tag queries.
//
// Tags are flat labels, not paths, so this wraps path.Match (slash-free
// semantics are irrelevant for labels) with one extension: a pattern with
// no metacharacters matches exactly, making "find v1.2" safe even though
// "." and "[" mean something to the glob syntax.
package glob

import (
	"path"
	"strings"
)

// Match reports whether tag matches the glob pattern.
// Supports * and ? metacharacters. Returns an error for malformed patterns.
func Match(pattern, tag string) (bool, error) {
	if !strings.ContainsAny(pattern, "*?[\\") {
		return pattern == tag, nil
	}
	return path.Match(pattern, tag)
}
