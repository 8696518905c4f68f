// rm.go implements the "nametag rm" command.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/fileop"
)

func newRmCmd() *cobra.Command {
	var tags []string

	c := &cobra.Command{
		Use:   "rm -t <tag> [-t <tag>...] <path>...",
		Short: "Remove tags from files",
		Long: `Remove tags from files, renaming them to match. Tags a file does not
carry are ignored; removing the last tag drops the bracket segment
entirely.

  nametag rm -t draft report[draft urgent].txt   # report[urgent].txt
  nametag rm -t wip -r src/                      # whole tree`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTagOp("rm", args, func(path string) (fileop.Result, error) {
				return fileop.Remove(PreviewOut(), path, tags, FileOptions())
			}, map[string]any{"tags": tags})
		},
	}
	c.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag to remove (repeatable)")
	_ = c.MarkFlagRequired("tag")
	return c
}
