package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api"
)

func newMCPTestClient(t *testing.T) *todoer.Client {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	client, err := todoer.New(
		todoer.WithSQLite(dbPath),
		todoer.WithDataDir(tmpDir),
	)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func mcpRequest(t *testing.T, method string, id int, params map[string]any) []byte {
	t.Helper()
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		msg["params"] = params
	}
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return b
}

func postMCP(t *testing.T, handler http.Handler, body []byte, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("Mcp-Session-Id", sessionID)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMCPEndpoint_Initialize(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, nil)
	handler := apiServer.Handler()

	body := mcpRequest(t, "initialize", 1, map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0.0.1"},
	})

	w := postMCP(t, handler, body, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int    `json:"id"`
		Result  struct {
			ServerInfo struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
			Capabilities struct {
				Tools json.RawMessage `json:"tools"`
			} `json:"capabilities"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Result.ServerInfo.Name != "todoer" {
		t.Errorf("server name = %q, want todoer", resp.Result.ServerInfo.Name)
	}
	if resp.Result.ServerInfo.Version != "1.0.0" {
		t.Errorf("server version = %q, want 1.0.0", resp.Result.ServerInfo.Version)
	}
	if resp.Result.Capabilities.Tools == nil {
		t.Error("expected tools capability to be present")
	}
}

func TestMCPEndpoint_ListTools(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, nil)
	handler := apiServer.Handler()

	sessionID := initMCPSession(t, handler)

	body := mcpRequest(t, "tools/list", 2, nil)
	w := postMCP(t, handler, body, sessionID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	names := map[string]bool{}
	for _, tool := range resp.Result.Tools {
		names[tool.Name] = true
	}

	expected := []string{
		"filter_tasks",
		"add_task",
		"complete_task",
		"list_projects",
		"get_version",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("missing %s tool", name)
		}
	}
	if len(resp.Result.Tools) != 5 {
		t.Errorf("expected 5 tools, got %d", len(resp.Result.Tools))
	}
}

func TestMCPEndpoint_RejectsInvalidContentType(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, nil)
	handler := apiServer.Handler()

	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// initMCPSession sends an initialize request and returns the session ID.
func initMCPSession(t *testing.T, handler http.Handler) string {
	t.Helper()
	body := mcpRequest(t, "initialize", 1, map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0.0.1"},
	})
	w := postMCP(t, handler, body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("initialize: status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	sessionID := w.Header().Get("Mcp-Session-Id")
	if sessionID == "" {
		t.Fatal("initialize did not return a session ID")
	}
	return sessionID
}

// toolResultText decodes the JSON-RPC response from a tools/call and returns
// the text content and whether the tool reported an error.
func toolResultText(t *testing.T, w *httptest.ResponseRecorder) (string, bool) {
	t.Helper()
	var resp struct {
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	if len(resp.Result.Content) == 0 {
		return "", resp.Result.IsError
	}
	return resp.Result.Content[0].Text, resp.Result.IsError
}

// TestMCPEndpoint_AddAndFilterTasks drives the add_task and filter_tasks
// tools end to end against a SQLite-backed client.
func TestMCPEndpoint_AddAndFilterTasks(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, nil)
	handler := apiServer.Handler()
	sessionID := initMCPSession(t, handler)

	addBody := mcpRequest(t, "tools/call", 2, map[string]any{
		"name": "add_task",
		"arguments": map[string]any{
			"content":  "water plants",
			"priority": 3,
		},
	})
	w := postMCP(t, handler, addBody, sessionID)
	if w.Code != http.StatusOK {
		t.Fatalf("add_task: status = %d; body: %s", w.Code, w.Body.String())
	}
	text, isError := toolResultText(t, w)
	if isError {
		t.Fatalf("add_task returned error: %s", text)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(text), &created); err != nil {
		t.Fatalf("unmarshal add_task result: %v", err)
	}
	if created.ID == "" {
		t.Fatal("add_task returned empty id")
	}

	filterBody := mcpRequest(t, "tools/call", 3, map[string]any{
		"name": "filter_tasks",
		"arguments": map[string]any{
			"query": "p3",
		},
	})
	w = postMCP(t, handler, filterBody, sessionID)
	if w.Code != http.StatusOK {
		t.Fatalf("filter_tasks: status = %d; body: %s", w.Code, w.Body.String())
	}
	text, isError = toolResultText(t, w)
	if isError {
		t.Fatalf("filter_tasks returned error: %s", text)
	}
	if !strings.Contains(text, "water plants") {
		t.Errorf("filter_tasks output should contain the task, got: %s", text)
	}

	noMatch := mcpRequest(t, "tools/call", 4, map[string]any{
		"name": "filter_tasks",
		"arguments": map[string]any{
			"query": "p1",
		},
	})
	w = postMCP(t, handler, noMatch, sessionID)
	text, isError = toolResultText(t, w)
	if isError {
		t.Fatalf("filter_tasks returned error: %s", text)
	}
	if strings.Contains(text, "water plants") {
		t.Errorf("p1 filter should not match a p3 task, got: %s", text)
	}
}

// TestMCPEndpoint_ServerMiddlewareStack verifies that MCP works through the
// full server middleware stack (as built by ListenAndServe). chi's Timeout
// middleware wraps the ResponseWriter, which breaks MCP's session headers,
// so the /mcp mount must sit outside the timeout group.
func TestMCPEndpoint_ServerMiddlewareStack(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, nil)
	apiServer.MountRoutes()

	// Build the same handler stack as ListenAndServe: the Server router
	// (with RequestID, RealIP, Recoverer) wrapping the APIServer routes.
	srv := api.NewServer("", nil)
	srv.Router().Mount("/", apiServer.Router())
	handler := srv.Router()

	sessionID := initMCPSession(t, handler)

	body := mcpRequest(t, "tools/list", 2, nil)
	w := postMCP(t, handler, body, sessionID)
	if w.Code != http.StatusOK {
		t.Fatalf("tools/list: status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	callBody := mcpRequest(t, "tools/call", 3, map[string]any{
		"name":      "get_version",
		"arguments": map[string]any{},
	})
	w = postMCP(t, handler, callBody, sessionID)
	if w.Code != http.StatusOK {
		t.Fatalf("tools/call: status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	text, isError := toolResultText(t, w)
	if isError {
		t.Fatalf("get_version returned error: %s", text)
	}
	if text != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", text)
	}
}
