// serve.go implements the "nametag serve" command for MCP server operation.
//
// Separated because serve has unique lifecycle requirements: unlike other
// commands that run and exit, serve blocks indefinitely handling MCP
// requests over stdio.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/internetimagery/nametag/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Paths are resolved against the working directory, so launch
from the directory whose files should be tagged.

See "nametag guide serve" for client configuration.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
