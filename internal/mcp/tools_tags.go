// tools_tags.go implements the MCP tool handlers.
//
// Design: Tag operations are idempotent - adding an existing tag or removing
// a non-existent tag succeeds silently. This simplifies LLM workflows that
// may not track current tag state. Previews are discarded (io.Discard); the
// tool result already reports the rename.

package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/internetimagery/nametag/internal/fileop"
	"github.com/internetimagery/nametag/internal/log"
	"github.com/internetimagery/nametag/internal/scan"
)

// tagAdd handles nametag_add tool calls.
func (h *handlers) tagAdd(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags is required"), nil
	}

	result, err := fileop.Add(io.Discard, path, tags, fileop.Options{})

	log.Event("mcp:nametag_add", "add").Path(path).Renamed(result.Renamed).Detail("tags", tags).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// tagRemove handles nametag_remove tool calls.
func (h *handlers) tagRemove(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags is required"), nil
	}

	result, err := fileop.Remove(io.Discard, path, tags, fileop.Options{})

	log.Event("mcp:nametag_remove", "remove").Path(path).Renamed(result.Renamed).Detail("tags", tags).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// tagClear handles nametag_clear tool calls.
func (h *handlers) tagClear(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	result, err := fileop.Clear(io.Discard, path, fileop.Options{})

	log.Event("mcp:nametag_clear", "clear").Path(path).Renamed(result.Renamed).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// listTags handles nametag_tags tool calls.
func (h *handlers) listTags(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	log.Event("mcp:nametag_tags", "list").Path(path).Write(nil)

	return jsonResult(fileop.List(path))
}

// findTagged handles nametag_find tool calls.
func (h *handlers) findTagged(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	dir := getString(req, "dir", ".")
	recursive := getBool(req, "recursive", false)

	files, err := scan.Expand([]string{dir}, scan.Options{Recursive: recursive})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var matched []fileop.Result
	for _, f := range files {
		ok, err := fileop.Matches(f, pattern)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if ok {
			matched = append(matched, fileop.List(f))
		}
	}

	log.Event("mcp:nametag_find", "find").Detail("pattern", pattern).Detail("count", len(matched)).Write(nil)

	if len(matched) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no files match tag pattern %q", pattern)), nil
	}
	return jsonResult(matched)
}
