// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes read-only portfolio tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/marovec/folio/internal/portfolio"
)

// Server wraps the MCP server with Folio tools.
type Server struct {
	mcp *server.MCPServer
	svc *portfolio.Service
}

// New creates a new MCP server with all Folio tools registered.
func New(svc *portfolio.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Folio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List portfolio projects, optionally filtered by tag (case-insensitive) and/or restricted to featured projects."),
		mcp.WithString("tag", mcp.Description("Optional tag to filter by (empty for all)")),
		mcp.WithBoolean("featured", mcp.Description("When true, return only featured projects")),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("get_project",
		mcp.WithDescription("Read the full detail of one project: metadata, description (raw and rendered HTML), and resolved gallery images."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Project identifier")),
	), s.getProject)

	s.mcp.AddTool(mcp.NewTool("get_links",
		mcp.WithDescription("Read the external link document (social profiles, contact entries, site metadata)."),
	), s.getLinks)

	s.mcp.AddTool(mcp.NewTool("get_project_format",
		mcp.WithDescription("Returns the canonical project.md content format. "+
			"Read this before authoring project content files."),
	), s.getProjectFormat)

	// Resource: project content format contract.
	s.mcp.AddResource(
		mcp.NewResource("folio://project-format", "Project Content Format",
			mcp.WithResourceDescription("Canonical project.md format that all project folders must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readProjectFormatResource,
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

func (s *Server) listProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag := ""
	if v, err := req.RequireString("tag"); err == nil {
		tag = v
	}
	featured := false
	if v, err := req.RequireBool("featured"); err == nil {
		featured = v
	}

	projects := s.svc.ListProjects(ctx, tag, featured)
	out, _ := json.MarshalIndent(projects, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.GetProject(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	out, _ := json.MarshalIndent(detail, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getLinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := s.svc.Links(ctx)
	out, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getProjectFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ProjectFormatContract), nil
}

func (s *Server) readProjectFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "folio://project-format",
			MIMEType: "text/markdown",
			Text:     ProjectFormatContract,
		},
	}, nil
}
