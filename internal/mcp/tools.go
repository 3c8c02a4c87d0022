package mcp

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

func boolPtr(b bool) *bool { return &b }

// registerTools exposes every registry tool through the protocol. The
// handlers stay thin: validation, execution, and journaling all happen
// inside Registry.Invoke so the contract is identical on every backend.
func (s *Server) registerTools() {
	for _, tool := range s.reg.Catalog() {
		annotations := &mcp.ToolAnnotations{
			ReadOnlyHint:  tool.ReadOnlyHint,
			OpenWorldHint: boolPtr(false),
		}
		if tool.Name == "delete_note" {
			annotations.DestructiveHint = boolPtr(true)
		}

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
			Annotations: annotations,
		}, s.toolHandler(tool.Name))
	}
}

func (s *Server) toolHandler(name string) func(context.Context, *mcp.CallToolRequest, map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result, err := s.reg.Invoke(ctx, callerFor(req), name, args)
		if err != nil {
			return nil, nil, err
		}
		return mustTextResult(result), nil, nil
	}
}

// callerFor returns the confirmation capability for this request, or
// nil when the connected client does not support elicitation.
func callerFor(req *mcp.CallToolRequest) registry.Caller {
	if req == nil || req.Session == nil {
		return nil
	}
	params := req.Session.InitializeParams()
	if params == nil || params.Capabilities == nil || params.Capabilities.Elicitation == nil {
		return nil
	}
	return &elicitCaller{session: req.Session}
}

// elicitCaller gates destructive actions on an MCP elicitation
// round-trip with the user.
type elicitCaller struct {
	session *mcp.ServerSession
}

func (c *elicitCaller) Confirm(ctx context.Context, message string) (bool, error) {
	res, err := c.session.Elicit(ctx, &mcp.ElicitParams{
		Message: message,
		RequestedSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"confirm": {Type: "boolean", Description: "Approve the action"},
			},
			Required: []string{"confirm"},
		},
	})
	if err != nil {
		return false, err
	}
	if res.Action != "accept" {
		// decline and cancel both count as denial
		return false, nil
	}
	confirmed, _ := res.Content["confirm"].(bool)
	return confirmed, nil
}
