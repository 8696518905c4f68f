// Package rename plans and applies filename changes on disk.
//
// The codec produces the new name; this package owns the actual filesystem
// rename. Planning and applying are separate steps so the CLI can show a
// preview (and honour --dry-run) before anything is touched.
//
// Design: Apply refuses to overwrite unless Overwrite is set. A tag
// operation should never eat an unrelated file, so a pre-existing
// destination is an error rather than a silent clobber; the --force flag
// opts in. The check-then-rename is not atomic, but tag renames stay
// within one directory and the window is acceptable for an interactive tool.
package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDestinationExists is returned when the target name is already taken
// by a different file.
var ErrDestinationExists = errors.New("destination already exists")

// Options configures how plans are applied.
type Options struct {
	// Overwrite replaces an existing destination instead of failing.
	Overwrite bool
}

// Plan is a single pending rename.
type Plan struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NoOp reports whether the rename would change nothing.
func (p Plan) NoOp() bool {
	return p.From == p.To
}

// Apply performs the rename. No-op plans return immediately without
// touching the filesystem.
func Apply(p Plan, opts Options) error {
	if p.NoOp() {
		return nil
	}

	if !opts.Overwrite {
		if _, err := os.Lstat(p.To); err == nil {
			return fmt.Errorf("rename %q to %q: %w", p.From, p.To, ErrDestinationExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("rename %q to %q: %w", p.From, p.To, err)
		}
	}

	if err := os.Rename(p.From, p.To); err != nil {
		return fmt.Errorf("rename %q to %q: %w", p.From, p.To, err)
	}
	return nil
}

// ApplyAll performs a batch of renames, stopping at the first failure and
// returning how many plans were applied. Earlier renames are not rolled
// back; the caller reports the partial state to the user.
func ApplyAll(plans []Plan, opts Options) (int, error) {
	for i, p := range plans {
		if err := Apply(p, opts); err != nil {
			return i, err
		}
	}
	return len(plans), nil
}
