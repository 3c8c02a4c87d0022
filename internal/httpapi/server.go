// Package httpapi bridges the tool registry onto HTTP. This is the
// polyfill backend: same tools, same invocation contract, delivered
// over JSON endpoints instead of a native MCP host.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

// Server serves the registry over HTTP.
type Server struct {
	reg   *registry.Registry
	store *notes.Store
}

// New creates the bridge around an already-populated registry.
func New(reg *registry.Registry, store *notes.Store) *Server {
	return &Server{reg: reg, store: store}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/tools", s.ListTools)
		v1.POST("/tools/:name", s.CallTool)
		v1.GET("/notes", s.ListNotes)
		v1.GET("/journal", s.ListJournal)
	}

	return r
}

// Listen serves until the listener fails.
func (s *Server) Listen(addr string) error {
	return s.Router().Run(addr)
}
