// Package mcp serves the tool registry to MCP hosts over stdio.
// This is the native backend: the host discovers the catalog through
// the protocol and every call routes through the shared dispatcher.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// Server wraps the go-sdk MCP server with the notedeck registry.
type Server struct {
	reg    *registry.Registry
	store  *notes.Store
	server *mcp.Server
}

// NewServer creates the MCP server and registers all tools, resources,
// prompts, and completions.
func NewServer(reg *registry.Registry, store *notes.Store, version string) *Server {
	s := &Server{reg: reg, store: store}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "notedeck",
			Version: version,
		},
		&mcp.ServerOptions{
			CompletionHandler: s.completionHandler,
			Instructions: `Notedeck keeps a small in-memory list of notes for this session.

- add_note / delete_note mutate the list; list_notes, search_notes, get_stats are read-only
- Notes vanish when the session ends; do not treat this as durable storage
- delete_note may ask the user for confirmation before it completes
- The notedeck://journal resource shows every tool call made so far`,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// Run serves over stdio until the host disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// textResult converts any data to a CallToolResult with JSON TextContent.
// Data goes into Content rather than StructuredContent so every client
// can render it.
func textResult(data any) (*mcp.CallToolResult, error) {
	if data == nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: "{}"},
			},
		}, nil
	}
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, nil
}

// mustTextResult is like textResult but returns an error result instead
// of failing.
func mustTextResult(data any) *mcp.CallToolResult {
	res, err := textResult(data)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf(`{"error": %q}`, err.Error())},
			},
			IsError: true,
		}
	}
	return res
}
