package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerResources adds read-only views over the store, the catalog,
// and the invocation journal.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         "notedeck://notes",
		Name:        "notes",
		Description: "All notes in creation order",
		MIMEType:    "application/json",
	}, s.handleNotesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "notedeck://notes/{id}",
		Name:        "note",
		Description: "A single note by id",
		MIMEType:    "application/json",
	}, s.handleNoteResource)

	s.server.AddResource(&mcp.Resource{
		URI:         "notedeck://journal",
		Name:        "journal",
		Description: "Recent tool invocations, newest first",
		MIMEType:    "application/json",
	}, s.handleJournalResource)

	s.server.AddResource(&mcp.Resource{
		URI:         "notedeck://catalog",
		Name:        "catalog",
		Description: "The tool catalog: names, descriptions, schemas, read-only hints",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

func jsonResource(uri string, data any) (*mcp.ReadResourceResult, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}, nil
}

func (s *Server) handleNotesResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.store.List())
}

func (s *Server) handleNoteResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw := strings.TrimPrefix(req.Params.URI, "notedeck://notes/")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("bad note id %q", raw)
	}
	note, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, note)
}

func (s *Server) handleJournalResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.reg.Journal().Recent(0))
}

// catalogEntry is the discovery shape: everything a caller needs to
// know about a tool before calling it.
type catalogEntry struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	InputSchema  any    `json:"inputSchema"`
	ReadOnlyHint bool   `json:"readOnlyHint"`
}

func (s *Server) handleCatalogResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var entries []catalogEntry
	for _, tool := range s.reg.Catalog() {
		entries = append(entries, catalogEntry{
			Name:         tool.Name,
			Description:  tool.Description,
			InputSchema:  tool.InputSchema,
			ReadOnlyHint: tool.ReadOnlyHint,
		})
	}
	return jsonResource(req.Params.URI, entries)
}
