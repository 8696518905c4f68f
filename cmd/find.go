// find.go implements the "nametag find" command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/fileop"
	"github.com/internetimagery/nametag/internal/log"
	"github.com/internetimagery/nametag/internal/scan"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <pattern> [<dir>...]",
		Short: "Find files by tag",
		Long: `List files whose tags match a glob pattern. A pattern without
metacharacters matches a tag exactly.

  nametag find draft            # files tagged "draft"
  nametag find 'v1.*' releases  # glob over tags
  nametag find '*' -r           # every tagged file in the tree`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFind,
	}
}

func runFind(_ *cobra.Command, args []string) error {
	pattern := args[0]
	dirs := args[1:]
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	files, err := scan.Expand(dirs, ScanOptions())
	if err != nil {
		return PrintJSONError(err)
	}

	var matched []fileop.Result
	for _, f := range files {
		ok, err := fileop.Matches(f, pattern)
		if err != nil {
			return PrintJSONError(err)
		}
		if ok {
			matched = append(matched, fileop.List(f))
		}
	}

	log.Event("tag:find", "find").Detail("pattern", pattern).Detail("count", len(matched)).Write(nil)

	for _, r := range matched {
		if !JSON() {
			fmt.Fprintln(out, r.Path)
		}
	}
	return PrintJSON(matched)
}
