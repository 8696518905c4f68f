// Package scan expands command-line path arguments into concrete file lists.
//
// Files pass through as-is; directories are expanded to the files they
// contain, one level deep by default or fully with Recursive. The CLI hands
// the resulting paths to the codec one at a time - this package never
// interprets names, it only walks.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options configures argument expansion.
type Options struct {
	Recursive  bool // Descend into subdirectories
	ShowHidden bool // Include dot-prefixed entries when expanding directories
}

// Expand resolves args into a list of file paths. Explicitly named files
// are always included, hidden or not; the hidden filter only applies to
// entries discovered by expanding a directory. Directories themselves are
// never returned - tags go on files.
func Expand(args []string, opts Options) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		expanded, err := expandDir(arg, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}
	return files, nil
}

// expandDir lists the files under dir, honouring the recursion and hidden
// options.
func expandDir(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if hidden(d.Name()) && !opts.ShowHidden {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", dir, err)
	}
	return files, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
