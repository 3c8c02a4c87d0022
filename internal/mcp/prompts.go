package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds MCP prompt templates to the server
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "review_notes",
		Title:       "Review Notes",
		Description: "Summarize the current notes and suggest cleanup",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "tag",
				Description: "Limit the review to one tag (idea, todo, reference, important)",
				Required:    false,
			},
		},
	}, s.handleReviewNotesPrompt)
}

func (s *Server) handleReviewNotesPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	tag := req.Params.Arguments["tag"]

	scope := "all notes"
	fetch := "1. Call list_notes to fetch everything"
	if tag != "" {
		scope = fmt.Sprintf("notes tagged %q", tag)
		fetch = fmt.Sprintf("1. Call search_notes with query %q", tag)
	}

	promptText := fmt.Sprintf(`Please review %s in this session:

%s
2. Call get_stats and report the per-tag breakdown
3. Point out duplicates or notes that look stale
4. For each note you suggest deleting, name it explicitly and wait for my approval — delete_note will ask for confirmation`, scope, fetch)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Review %s", scope),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText},
			},
		},
	}, nil
}
