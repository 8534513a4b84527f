package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luo785859020/time-sync-mcp/internal/app"
	"github.com/luo785859020/time-sync-mcp/internal/mcp"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(mcp.NewHTTPHandler(app.NewMCPServer()))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientInitialize(t *testing.T) {
	backend := newTestBackend(t)
	c := New(backend.URL)

	info, err := c.Initialize(context.Background())
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if info.ServerInfo.Name != "time-sync-mcp" {
		t.Fatalf("unexpected server name: %q", info.ServerInfo.Name)
	}
}

func TestClientListTools(t *testing.T) {
	backend := newTestBackend(t)
	c := New(backend.URL)

	tools, err := c.ListTools(context.Background())
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}
	if tools[0].Name != "get_current_time" {
		t.Fatalf("unexpected first tool: %q", tools[0].Name)
	}
}

func TestClientCallTool(t *testing.T) {
	backend := newTestBackend(t)
	c := New(backend.URL)

	result, err := c.CallTool(context.Background(), "get_time_difference", map[string]any{
		"from": "2024-01-01T00:00:00Z",
		"to":   "2024-01-02T01:02:03Z",
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content part, got %d", len(result.Content))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].Text), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got := payload["difference_seconds"].(float64); got != 90123 {
		t.Fatalf("unexpected difference_seconds: %v", got)
	}
}

func TestClientSurfacesToolErrors(t *testing.T) {
	backend := newTestBackend(t)
	c := New(backend.URL)

	_, err := c.CallTool(context.Background(), "nonexistent_tool", nil)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(err.Error(), "nonexistent_tool") {
		t.Fatalf("error should name the tool: %v", err)
	}
}
