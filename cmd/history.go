// history.go implements the "nametag history" command.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent tag operations",
		Long: `Show recent tag operations from the audit log, newest first. The log
covers every directory this user has run nametag in.

  nametag history              # last 20 operations
  nametag history --limit 100`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			result, err := history.Run(PreviewOut(), limit)
			if err != nil {
				return PrintJSONError(err)
			}
			return PrintJSON(result.Entries)
		},
	}
	c.Flags().IntVar(&limit, "limit", history.DefaultLimit, "Maximum entries to show")
	return c
}
