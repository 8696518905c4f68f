// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and colourised rename previews.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/internetimagery/nametag/internal/log"
	"github.com/internetimagery/nametag/internal/rename"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Listing pairs a file path with its tags for display.
type Listing struct {
	Path string
	Tags []string
}

// Tags prints one tag per line, the plain machine-friendly form used when
// listing a single file or the union across files.
func Tags(w io.Writer, tags []string) {
	for _, t := range tags {
		fmt.Fprintln(w, t)
	}
}

// Listings prints per-file tag listings with the path column aligned.
// Untagged files show "-" so every file named on the command line appears.
func Listings(w io.Writer, listings []Listing) {
	maxPath := 0
	for _, l := range listings {
		if len(l.Path) > maxPath {
			maxPath = len(l.Path)
		}
	}
	for _, l := range listings {
		tags := "-"
		if len(l.Tags) > 0 {
			tags = strings.Join(l.Tags, " ")
		}
		fmt.Fprintf(w, "%-*s  %s\n", maxPath, l.Path, tags)
	}
}

// Rename prints a single rename as "from -> to". With colour enabled the
// changed runs are highlighted inline: removed bytes red in the old name,
// added bytes green in the new one.
func Rename(w io.Writer, p rename.Plan, colour bool) {
	if !colour {
		fmt.Fprintf(w, "%s -> %s\n", p.From, p.To)
		return
	}
	fmt.Fprintf(w, "%s -> %s\n", highlight(p.From, p.To, diffmatchpatch.DiffDelete),
		highlight(p.From, p.To, diffmatchpatch.DiffInsert))
}

// Renames prints a batch of renames, prefixing each with "dry-run:" when
// nothing was applied.
func Renames(w io.Writer, plans []rename.Plan, dryRun, colour bool) {
	for _, p := range plans {
		if dryRun {
			fmt.Fprint(w, "dry-run: ")
		}
		Rename(w, p, colour)
	}
}

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// highlight renders one side of a rename with its changed runs coloured.
// keep selects which side: DiffDelete renders the old name, DiffInsert the
// new one.
func highlight(from, to string, keep diffmatchpatch.Operation) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))

	colour := ansiRed
	if keep == diffmatchpatch.DiffInsert {
		colour = ansiGreen
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case keep:
			b.WriteString(colour + d.Text + ansiReset)
		}
	}
	return b.String()
}

// History prints audit log entries, newest first, one per line.
func History(w io.Writer, entries []log.Entry) {
	for _, e := range entries {
		ts := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		status := " "
		if !e.Success {
			status = "!"
		}
		target := e.Path
		if e.Renamed != "" {
			target = fmt.Sprintf("%s -> %s", e.Path, e.Renamed)
		}
		fmt.Fprintf(w, "%s %s %-8s %s\n", ts, status, e.Action, target)
		if e.Error != "" {
			fmt.Fprintf(w, "                   error: %s\n", e.Error)
		}
	}
}
