// Package api is the Go client for the notedeck HTTP bridge. The CLI
// uses it in --remote mode to call tools on a running bridge process.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/notedeckhq/notedeck-cli/internal/journal"
	"github.com/notedeckhq/notedeck-cli/internal/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a bridge client. NOTEDECK_API_BASE_URL overrides
// the default local address.
func NewClient(addr string) *Client {
	baseURL := os.Getenv("NOTEDECK_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://" + addr + "/v1"
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("bridge error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// ToolDescriptor mirrors the bridge's catalog DTO.
type ToolDescriptor struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	InputSchema  json.RawMessage `json:"inputSchema"`
	ReadOnlyHint bool            `json:"readOnlyHint"`
}

// ListTools fetches the tool catalog.
func (c *Client) ListTools() ([]ToolDescriptor, error) {
	body, err := c.makeRequest(http.MethodGet, "/tools", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Tools []ToolDescriptor `json:"tools"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return payload.Tools, nil
}

// CallTool invokes a tool by name and returns the raw result JSON.
func (c *Client) CallTool(name string, input map[string]any) (json.RawMessage, error) {
	if input == nil {
		input = map[string]any{}
	}
	body, err := c.makeRequest(http.MethodPost, "/tools/"+name, input)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return payload.Result, nil
}

// ListNotes fetches all notes from the bridge.
func (c *Client) ListNotes() ([]models.Note, error) {
	body, err := c.makeRequest(http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Notes []models.Note `json:"notes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return payload.Notes, nil
}

// ListJournal fetches recent invocations, newest first. limit <= 0
// returns everything retained.
func (c *Client) ListJournal(limit int) ([]journal.Entry, error) {
	endpoint := "/journal"
	if limit > 0 {
		endpoint = fmt.Sprintf("/journal?limit=%d", limit)
	}
	body, err := c.makeRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Entries []journal.Entry `json:"entries"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode journal: %w", err)
	}
	return payload.Entries, nil
}
