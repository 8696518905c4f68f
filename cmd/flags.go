/*
Copyright © 2026 Internet Imagery
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Commands access these via accessor functions rather than directly
// accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The JSON() helper simplifies output format detection
// across all commands, and Colour() folds the config setting, the output
// format, and terminal detection into one decision.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/internetimagery/nametag/internal/config"
	"github.com/internetimagery/nametag/internal/fileop"
	"github.com/internetimagery/nametag/internal/scan"
)

var validOutputFormats = []string{"json"}

var (
	output    string
	dryRun    bool
	force     bool
	recursive bool
	hidden    bool
)

// cfg is the loaded configuration, set by Execute before commands run.
var cfg = &config.Config{}

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// PreviewOut returns the writer for rename previews. Previews are plain
// text, so they are suppressed under JSON output where the result object
// already reports the rename.
func PreviewOut() io.Writer {
	if JSON() {
		return io.Discard
	}
	return out
}

// DryRun returns true if renames should be planned but not applied.
func DryRun() bool { return dryRun }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour returns true if output should be colourised: enabled in config,
// writing to a terminal, and not emitting JSON.
func Colour() bool {
	return cfg.ColourOutput() && !JSON() && term.IsTerminal(int(os.Stdout.Fd()))
}

// ScanOptions returns traversal options from the flags and config.
func ScanOptions() scan.Options {
	return scan.Options{
		Recursive:  recursive,
		ShowHidden: hidden || cfg.ScanHidden(),
	}
}

// FileOptions returns tag operation options from the flags and config.
func FileOptions() fileop.Options {
	return fileop.Options{
		DryRun: dryRun,
		Force:  force,
		Colour: Colour(),
	}
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the error,
	// checking it is futile. We just return nil to suppress Cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview renames without touching files")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite an existing file at the destination name")
	rootCmd.PersistentFlags().BoolVarP(&recursive, "recursive", "r", false, "Expand directories recursively")
	rootCmd.PersistentFlags().BoolVar(&hidden, "hidden", false, "Include dotfiles when expanding directories")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
