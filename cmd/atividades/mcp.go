package main

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/edulab/atividades/activity"
	"github.com/edulab/atividades/docpipe"
	"github.com/edulab/atividades/kit"
)

// registerMCP exposes the pipeline as MCP tools for agent-driven use.
func (s *service) registerMCP(srv *mcp.Server) {
	s.registerProcessTool(srv)
	s.registerRenderTool(srv)
	s.registerFormatsTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// --- process ---

type processReq struct {
	Path   string `json:"path"`
	FileID string `json:"file_id"`
}

func (s *service) registerProcessTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atividades_process",
		Description: "Extract and segment an activity document (docx, pdf, csv). Returns metadata, recognized sections, and the transient file id.",
		InputSchema: inputSchema(map[string]any{
			"path":    map[string]any{"type": "string", "description": "File path of the saved upload"},
			"file_id": map[string]any{"type": "string", "description": "Optional file identifier; generated when empty"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*processReq)
		fileID, doc, err := s.processUpload(ctx, r.Path, r.FileID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"file_id":  fileID,
			"metadata": doc.Metadata,
		}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r processReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- render ---

type renderReq struct {
	FileID       string                `json:"file_id"`
	ActivityInfo activity.ActivityInfo `json:"activity_info"`
}

func (s *service) registerRenderTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atividades_render",
		Description: "Render the navigation page, section pages, and editable raw pairs for a processed document.",
		InputSchema: inputSchema(map[string]any{
			"file_id":       map[string]any{"type": "string", "description": "File id returned by atividades_process"},
			"activity_info": map[string]any{"type": "object", "description": "Instructor-supplied defaults (titulo, curso, modulo, agenda, professor_nome, data_inicio, data_fim)"},
		}, []string{"file_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*renderReq)
		runID, set, err := s.generatePages(ctx, r.FileID, r.ActivityInfo)
		if err != nil {
			return nil, err
		}
		return map[string]any{"run_id": runID, "pages": set}, nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r renderReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- formats ---

func (s *service) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "atividades_formats",
		Description: "List all supported document formats.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"formats": docpipe.SupportedFormats()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
