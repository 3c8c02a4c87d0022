package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedeckhq/notedeck-cli/internal/httpapi"
	"github.com/notedeckhq/notedeck-cli/internal/journal"
	"github.com/notedeckhq/notedeck-cli/internal/notes"
	"github.com/notedeckhq/notedeck-cli/internal/registry"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := notes.NewStore()
	reg := registry.New(journal.New(0))
	require.NoError(t, registry.RegisterNoteTools(reg, store))

	srv := httptest.NewServer(httpapi.New(reg, store).Router())
	t.Cleanup(srv.Close)

	c := NewClient("ignored")
	c.BaseURL = srv.URL + "/v1"
	return c
}

func TestClientCatalogAndCalls(t *testing.T) {
	c := newTestClient(t)

	tools, err := c.ListTools()
	require.NoError(t, err)
	require.Len(t, tools, 5)
	assert.Equal(t, "add_note", tools[0].Name)

	result, err := c.CallTool("add_note", map[string]any{
		"title":   "remote",
		"content": "created over the bridge",
	})
	require.NoError(t, err)
	assert.Contains(t, string(result), `"id":1`)

	notes, err := c.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "remote", notes[0].Title)

	entries, err := c.ListJournal(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "add_note", entries[0].Tool)
}

func TestClientSurfacesToolFailures(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CallTool("delete_note", map[string]any{"id": 99})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not found"))

	_, err = c.CallTool("add_note", map[string]any{"content": "missing title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
