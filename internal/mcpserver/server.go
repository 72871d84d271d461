// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the FXDA generation tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/fxda/internal/assemble"
	"github.com/starford/fxda/internal/catalog"
)

// Server wraps the MCP server with the FXDA tools.
type Server struct {
	mcp *server.MCPServer
	gen *assemble.Generator
}

// New creates a new MCP server with all tools registered.
func New(gen *assemble.Generator) *Server {
	s := &Server{gen: gen}

	s.mcp = server.NewMCPServer(
		"FXDA",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("generate_template",
		mcp.WithDescription("Generate a complete FXDA document template from a free-text prompt. "+
			"Returns the full template JSON including pages and positioned form fields. "+
			"See the fxda://format resource for the document structure."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Free-text description of the desired template")),
	), s.generateTemplate)

	s.mcp.AddTool(mcp.NewTool("suggest_fields",
		mcp.WithDescription("Suggest form fields for already-assembled page text. "+
			"Reacts to signature, date and confidentiality mentions in the content."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Plain-text page content to analyze")),
	), s.suggestFields)

	s.mcp.AddTool(mcp.NewTool("rewrite_block",
		mcp.WithDescription("Rewrite a text block: normalize whitespace and sentence capitalization."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text block to rewrite")),
		mcp.WithString("style", mcp.Description("Rewrite style (defaults to formal)")),
	), s.rewriteBlock)

	s.mcp.AddTool(mcp.NewTool("list_workflow_presets",
		mcp.WithDescription("List the e-signature workflow presets that can be attached to a template."),
	), s.listWorkflowPresets)

	// Resource: FXDA format contract.
	s.mcp.AddResource(
		mcp.NewResource("fxda://format", "FXDA Format Contract",
			mcp.WithResourceDescription("Canonical FXDA document-template JSON structure."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) generateTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tpl := s.gen.Generate(prompt)
	out, _ := json.MarshalIndent(tpl, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) suggestFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := assemble.SuggestFields(content)
	out, _ := json.MarshalIndent(fields, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) rewriteBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	style := ""
	if v, err := req.RequireString("style"); err == nil {
		style = v
	}
	return mcp.NewToolResultText(assemble.RewriteBlock(text, style)), nil
}

func (s *Server) listWorkflowPresets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(catalog.Presets(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "fxda://format",
			MIMEType: "text/markdown",
			Text:     FormatContract,
		},
	}, nil
}
