// Package fileop applies tag operations to files on disk.
//
// This is the bridge between the pure nametag codec and the filesystem:
// each operation parses a filename, mutates its tag set, and renames the
// file to the canonical serialised form. The codec never sees the
// filesystem; this package never inspects bytes - it delegates all naming
// decisions to the codec.
package fileop

import (
	"fmt"
	"io"
	"slices"

	"github.com/internetimagery/nametag/internal/format"
	"github.com/internetimagery/nametag/internal/glob"
	"github.com/internetimagery/nametag/internal/rename"
	"github.com/internetimagery/nametag/internal/validate"
	"github.com/internetimagery/nametag/nametag"
)

// Options configures a tag operation.
type Options struct {
	DryRun bool // Plan and print, touch nothing
	Force  bool // Overwrite an existing destination
	Colour bool // Colourise rename previews
}

// Result contains the outcome of a tag operation on one file.
type Result struct {
	Path    string   `json:"path"`
	Renamed string   `json:"renamed,omitempty"` // New path, if the file moved
	Tags    []string `json:"tags"`              // Tag set after the operation
}

// Add adds tags to a file and renames it to match.
func Add(w io.Writer, path string, tags []string, opts Options) (Result, error) {
	if err := validate.Tags(tags); err != nil {
		return Result{Path: path}, err
	}
	return apply(w, path, opts, func(nt *nametag.NameTag) {
		for _, t := range tags {
			nt.AddTag(t)
		}
	})
}

// Remove removes tags from a file and renames it to match. Tags the file
// does not carry are ignored, matching the codec's idempotent remove.
func Remove(w io.Writer, path string, tags []string, opts Options) (Result, error) {
	if err := validate.Tags(tags); err != nil {
		return Result{Path: path}, err
	}
	return apply(w, path, opts, func(nt *nametag.NameTag) {
		for _, t := range tags {
			nt.RemoveTag(t)
		}
	})
}

// Clear removes every tag from a file and renames it to match.
func Clear(w io.Writer, path string, opts Options) (Result, error) {
	return apply(w, path, opts, func(nt *nametag.NameTag) {
		nt.ClearTags()
	})
}

// List returns the tags a file carries without touching it.
func List(path string) Result {
	nt := nametag.ParsePath(path)
	return Result{Path: path, Tags: slices.Collect(nt.Tags())}
}

// Matches reports whether any of the file's tags match the glob pattern.
func Matches(path, pattern string) (bool, error) {
	for tag := range nametag.ParsePath(path).Tags() {
		ok, err := glob.Match(pattern, tag)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// apply runs mutate against the parsed filename and performs the resulting
// rename. No-op renames (the canonical form already on disk) are silent.
func apply(w io.Writer, path string, opts Options, mutate func(*nametag.NameTag)) (Result, error) {
	nt := nametag.ParsePath(path)
	mutate(nt)

	newPath, err := nt.String()
	if err != nil {
		// CLI arguments arrive as strings, so serialisation stays valid
		// text unless the parse itself was handed garbage.
		return Result{Path: path}, fmt.Errorf("serialise %q: %w", path, err)
	}

	result := Result{Path: path, Tags: slices.Collect(nt.Tags())}
	plan := rename.Plan{From: path, To: newPath}
	if plan.NoOp() {
		return result, nil
	}

	format.Renames(w, []rename.Plan{plan}, opts.DryRun, opts.Colour)
	if opts.DryRun {
		return result, nil
	}

	if err := rename.Apply(plan, rename.Options{Overwrite: opts.Force}); err != nil {
		return result, err
	}
	result.Renamed = newPath
	return result, nil
}
