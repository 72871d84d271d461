package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/fxda/internal/assemble"
	"github.com/starford/fxda/internal/models"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	gen := &assemble.Generator{
		Now:   func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string { return "fxda-test" },
	}
	return New(gen)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "generate_template":
		result, err = srv.generateTemplate(ctx, req)
	case "suggest_fields":
		result, err = srv.suggestFields(ctx, req)
	case "rewrite_block":
		result, err = srv.rewriteBlock(ctx, req)
	case "list_workflow_presets":
		result, err = srv.listWorkflowPresets(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGenerateTemplateTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "generate_template", map[string]interface{}{
		"prompt": "nda between two parties",
	})
	if r.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(r))
	}

	var tpl models.Template
	if err := json.Unmarshal([]byte(resultText(r)), &tpl); err != nil {
		t.Fatalf("result is not valid template JSON: %v", err)
	}
	if tpl.DocumentName != "Non-Disclosure Agreement" {
		t.Errorf("documentName = %q", tpl.DocumentName)
	}
	if tpl.WorkflowPresetID != "nda-standard" {
		t.Errorf("workflowPresetId = %q", tpl.WorkflowPresetID)
	}
	if len(tpl.Pages) != 1 {
		t.Errorf("pages = %d, want 1", len(tpl.Pages))
	}
}

func TestGenerateTemplateMissingPrompt(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "generate_template", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error for missing prompt")
	}
}

func TestSuggestFieldsTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "suggest_fields", map[string]interface{}{
		"content": "please sign below and date this document",
	})
	if r.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(r))
	}

	var fields []models.Field
	if err := json.Unmarshal([]byte(resultText(r)), &fields); err != nil {
		t.Fatalf("result is not valid field JSON: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(fields))
	}
	if fields[0].ID != "sig_1" || fields[1].ID != "effective_date" {
		t.Errorf("field ids = %q, %q", fields[0].ID, fields[1].ID)
	}
}

func TestRewriteBlockTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "rewrite_block", map[string]interface{}{
		"text": "hello world.  this is fine",
	})
	got := resultText(r)
	want := "Hello world. This is fine [AI rewrite: formal]"
	if got != want {
		t.Errorf("rewrite = %q, want %q", got, want)
	}
}

func TestListWorkflowPresetsTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_workflow_presets", map[string]interface{}{})
	text := resultText(r)

	var presets []models.WorkflowPreset
	if err := json.Unmarshal([]byte(text), &presets); err != nil {
		t.Fatalf("result is not valid preset JSON: %v", err)
	}
	if len(presets) != 4 {
		t.Errorf("presets = %d, want 4", len(presets))
	}
}

func TestFormatResource(t *testing.T) {
	srv := testServer(t)

	contents, err := srv.readFormatResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	if !strings.Contains(tc.Text, "612x792") {
		t.Error("format contract missing page dimensions")
	}
}
