package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/docbrowser/internal/browser"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the course modules to agents.
type Server struct {
	svc *browser.Service
	mcp *server.MCPServer
}

// NewServer creates a new MCP server over a browser service.
func NewServer(svc *browser.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"docbrowser",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listModulesTool, s.handleListModules)
	s.mcp.AddTool(readModuleTool, s.handleReadModule)
	s.mcp.AddTool(resolveAnchorTool, s.handleResolveAnchor)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
