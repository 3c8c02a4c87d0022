package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/notedeckhq/notedeck-cli/internal/models"
)

// completionHandler provides autocomplete suggestions for tool and
// prompt arguments. Only the tag enum is completable; everything else
// is free text.
func (s *Server) completionHandler(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	argName := req.Params.Argument.Name
	argValue := strings.ToLower(req.Params.Argument.Value)

	var values []string
	if argName == "tag" {
		for _, tag := range models.Tags() {
			if strings.HasPrefix(string(tag), argValue) {
				values = append(values, string(tag))
			}
		}
	}
	if values == nil {
		values = []string{}
	}

	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values:  values,
			Total:   len(values),
			HasMore: false,
		},
	}, nil
}
