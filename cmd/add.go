// add.go implements the "nametag add" command.
//
// Design: One fileop call per file, logged individually, so a failure
// midway leaves an accurate audit trail of what was renamed before the
// stop. Files already carrying every requested tag are silent no-ops.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/fileop"
	"github.com/internetimagery/nametag/internal/log"
	"github.com/internetimagery/nametag/internal/scan"
)

func newAddCmd() *cobra.Command {
	var tags []string

	c := &cobra.Command{
		Use:   "add -t <tag> [-t <tag>...] <path>...",
		Short: "Add tags to files",
		Long: `Add tags to files, renaming them to embed the tags in the filename.

  nametag add -t draft report.txt           # report[draft].txt
  nametag add -t beach -t 2026 photos/      # every file in photos/
  nametag add -t wip -n src/                # preview only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTagOp("add", args, func(path string) (fileop.Result, error) {
				return fileop.Add(PreviewOut(), path, tags, FileOptions())
			}, map[string]any{"tags": tags})
		},
	}
	c.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag to add (repeatable)")
	_ = c.MarkFlagRequired("tag")
	return c
}

// runTagOp expands args and applies op to each file, logging every
// operation. Used by add, rm, and clear, which differ only in the fileop
// call they make.
func runTagOp(action string, args []string, op func(path string) (fileop.Result, error), detail map[string]any) error {
	files, err := scan.Expand(args, ScanOptions())
	if err != nil {
		return PrintJSONError(err)
	}

	var results []fileop.Result
	for _, f := range files {
		result, err := op(f)

		b := log.Event("tag:"+action, action).Path(f).Renamed(result.Renamed)
		for k, v := range detail {
			b.Detail(k, v)
		}
		b.Write(err)

		if err != nil {
			return PrintJSONError(fmt.Errorf("%s %q: %w", action, f, err))
		}
		results = append(results, result)
	}
	return PrintJSON(results)
}
