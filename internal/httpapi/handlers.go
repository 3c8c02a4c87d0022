package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// ToolDescriptor is the discovery DTO for one catalog entry.
type ToolDescriptor struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	InputSchema  any    `json:"inputSchema"`
	ReadOnlyHint bool   `json:"readOnlyHint"`
}

// ListTools returns the full tool catalog.
func (s *Server) ListTools(c *gin.Context) {
	var tools []ToolDescriptor
	for _, tool := range s.reg.Catalog() {
		tools = append(tools, ToolDescriptor{
			Name:         tool.Name,
			Description:  tool.Description,
			InputSchema:  tool.InputSchema,
			ReadOnlyHint: tool.ReadOnlyHint,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": tools})
}

// CallTool invokes a tool by name; the request body is the tool input.
// HTTP offers no confirmation capability, so destructive tools proceed
// directly.
func (s *Server) CallTool(c *gin.Context) {
	name := c.Param("name")
	if _, ok := s.reg.Lookup(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + name})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	result, err := s.reg.InvokeJSON(c.Request.Context(), nil, name, body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func statusFor(err error) int {
	switch {
	case registry.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, notes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrUserCancelled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListNotes returns all notes in creation order.
func (s *Server) ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notes": s.store.List()})
}

// ListJournal returns recent invocations, newest first. Optional
// ?limit=N caps the page.
func (s *Server) ListJournal(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"entries": s.reg.Journal().Recent(limit)})
}
