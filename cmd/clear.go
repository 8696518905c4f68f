// clear.go implements the "nametag clear" command.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/fileop"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <path>...",
		Short: "Remove all tags from files",
		Long: `Strip the tag segment from filenames entirely, restoring the untagged
name. Untagged files are left alone.

  nametag clear report[draft urgent].txt   # report.txt
  nametag clear -n photos/                 # preview only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTagOp("clear", args, func(path string) (fileop.Result, error) {
				return fileop.Clear(PreviewOut(), path, FileOptions())
			}, nil)
		},
	}
}
