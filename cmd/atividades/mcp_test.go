package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testImpl = &mcp.Implementation{Name: "atividades-test", Version: "0.1.0"}

// mcpSession wires a test service into an in-memory MCP session.
func mcpSession(t *testing.T) (*service, *mcp.ClientSession) {
	t.Helper()
	svc := testService(t)

	srv := mcp.NewServer(testImpl, nil)
	svc.registerMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()

	go func() {
		_ = srv.Run(ctx, serverT)
	}()

	client := mcp.NewClient(testImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	return svc, session
}

// callTool invokes a tool and returns the JSON text from the first TextContent.
func callTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	if len(result.Content) == 0 {
		t.Fatalf("CallTool(%s): empty content", name)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent, got %T", name, result.Content[0])
	}
	return tc.Text
}

func TestMCP_Formats(t *testing.T) {
	_, session := mcpSession(t)

	text := callTool(t, session, "atividades_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Formats) != 4 {
		t.Fatalf("formats = %v", resp.Formats)
	}
}

func TestMCP_ProcessAndRender(t *testing.T) {
	svc, session := mcpSession(t)
	csvPath := writeSampleCSV(t)

	text := callTool(t, session, "atividades_process", map[string]any{"path": csvPath})

	var processResp struct {
		FileID   string `json:"file_id"`
		Metadata struct {
			Curso string `json:"curso"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(text), &processResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if processResp.FileID == "" {
		t.Fatal("missing file_id")
	}
	if processResp.Metadata.Curso != "História" {
		t.Errorf("curso = %q", processResp.Metadata.Curso)
	}

	text = callTool(t, session, "atividades_render", map[string]any{
		"file_id":       processResp.FileID,
		"activity_info": map[string]any{"professor_nome": "Ana Souza"},
	})

	var renderResp struct {
		RunID string `json:"run_id"`
		Pages struct {
			NavigationPath string `json:"navigation_path"`
		} `json:"pages"`
	}
	if err := json.Unmarshal([]byte(text), &renderResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if renderResp.RunID == "" || renderResp.Pages.NavigationPath == "" {
		t.Fatalf("render response = %s", text)
	}
	if !strings.HasPrefix(renderResp.RunID, "run_") {
		t.Errorf("run id = %q", renderResp.RunID)
	}

	// The run was recorded in the durable index.
	run, err := svc.index.Get(context.Background(), renderResp.RunID)
	if err != nil {
		t.Fatalf("index lookup: %v", err)
	}
	if run.FileID != processResp.FileID {
		t.Errorf("indexed file id = %q, want %q", run.FileID, processResp.FileID)
	}
}

func TestMCP_Process_UnsupportedFormat(t *testing.T) {
	_, session := mcpSession(t)

	path := filepath.Join(t.TempDir(), "foto.png")
	if err := os.WriteFile(path, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "atividades_process",
		Arguments: map[string]any{"path": path},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.GetError() == nil {
		t.Error("expected tool error for unsupported format")
	}
}
