/*
Copyright © 2026 Internet Imagery
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: Execute owns process-wide lifecycle - it loads configuration,
// opens the audit log (best-effort), runs the command tree, and closes the
// log on the way out. Individual commands read shared state through the
// accessors in flags.go rather than touching globals directly.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/config"
	"github.com/internetimagery/nametag/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "nametag",
	Short: "Work with tags embedded in filenames",
	Long: `Embed, remove, and query tags stored directly in filenames using the
name[tag1 tag2].ext format. The name outside the bracket segment is never
altered; renames can be previewed with --dry-run and are recorded in a
local history.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		newAddCmd(),
		newRmCmd(),
		newClearCmd(),
		newTagsCmd(),
		newFindCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and ensures the log is closed
// before exit. Exit code 1 indicates error.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		loadedCfg = &config.Config{}
	}
	cfg = loadedCfg

	if cfg.LogEnabled() {
		// Initialise audit logger (warn if it fails, but continue)
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetWorkDir(wd)
		}
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
