// config.go implements the "nametag config" command for configuration
// management.
//
// Design: Config follows a cascade model similar to git: local config
// (.nametag.yaml) takes precedence over global (~/.nametag/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/config"
	"github.com/internetimagery/nametag/internal/log"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  nametag config                    # show config
  nametag config colour             # show colour value
  nametag config colour false       # set colour

Configuration locations:
  Global: ~/.nametag/config.yaml
  Local:  .nametag.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.nametag.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var loaded *config.Config
	var err error
	if forceLocal {
		loaded, err = config.LoadScope(config.ScopeLocal)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if loaded.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values, stable order
		all := loaded.All()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		if !JSON() {
			for _, k := range keys {
				fmt.Fprintf(out, "%s: %s\n", k, all[k])
			}
		}
		log.Event("core:config", "list").Write(nil)
		return PrintJSON(all)

	case 1:
		v, err := loaded.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if !JSON() {
			fmt.Fprintln(out, v)
		}
		return PrintJSON(map[string]string{args[0]: v})

	default:
		if err := loaded.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := loaded.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if !JSON() {
			fmt.Fprintf(out, "%s = %s (%s)\n", args[0], args[1], scopeName)
		}
		return PrintJSON(map[string]string{args[0]: args[1], "scope": scopeName})
	}
}
