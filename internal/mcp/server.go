// Package mcp implements the Model Context Protocol server, exposing
// nametag operations to LLMs. This enables AI assistants to tag, untag,
// and query files through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/internetimagery/nametag/internal/version"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients. All tool paths are resolved relative to the process working
// directory, so launch the server from the directory being tagged.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"nametag",
		version.Short(),
		server.WithToolCapabilities(true),
	)

	registerTools(s, &handlers{})

	slog.Info("nametag MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers. Stateless: every call parses the
// filename fresh, so concurrent tool calls share nothing.
type handlers struct{}

// registerTools exposes nametag operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("nametag_add",
			mcp.WithDescription("Add tags to a file, renaming it to embed them as \"name[tag1 tag2].ext\""),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to add")),
		),
		h.tagAdd,
	)

	s.AddTool(
		mcp.NewTool("nametag_remove",
			mcp.WithDescription("Remove tags from a file, renaming it to match. Absent tags are ignored."),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to remove")),
		),
		h.tagRemove,
	)

	s.AddTool(
		mcp.NewTool("nametag_clear",
			mcp.WithDescription("Remove every tag from a file, renaming it to its untagged form"),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
		),
		h.tagClear,
	)

	s.AddTool(
		mcp.NewTool("nametag_tags",
			mcp.WithDescription("List the tags a file carries (read-only)"),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path")),
		),
		h.listTags,
	)

	s.AddTool(
		mcp.NewTool("nametag_find",
			mcp.WithDescription("List files in a directory whose tags match a glob pattern"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Tag glob pattern, e.g. \"draft\" or \"v1.*\"")),
			mcp.WithString("dir", mcp.Description("Directory to search (default: current)")),
			mcp.WithBoolean("recursive", mcp.Description("Descend into subdirectories")),
		),
		h.findTagged,
	)
}
