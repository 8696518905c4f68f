// Package history surfaces the audit log as the "nametag history" command.
//
// Every tag operation is recorded by internal/log; this package reads the
// recent entries back and hands them to the formatter, keeping the command
// layer free of storage details.
package history

import (
	"fmt"
	"io"

	"github.com/internetimagery/nametag/internal/format"
	"github.com/internetimagery/nametag/internal/log"
)

// DefaultLimit bounds a bare "nametag history" to a readable page.
const DefaultLimit = 20

// Result contains the outcome of a history query.
type Result struct {
	Entries []log.Entry
}

// Run retrieves recent audit entries and writes them to w, newest first.
func Run(w io.Writer, limit int) (Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries, err := log.Recent(limit)
	if err != nil {
		return Result{}, fmt.Errorf("read audit log: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history recorded.")
		return Result{}, nil
	}

	format.History(w, entries)
	return Result{Entries: entries}, nil
}
