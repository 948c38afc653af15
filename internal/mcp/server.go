package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/second-draft/internal/draft"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the email drafting tools.
type Server struct {
	service  *draft.Service
	defaults draft.Request
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server. defaults fill any argument a tool call
// leaves out. service may be nil, in which case only build_prompt works.
func NewServer(service *draft.Service, defaults draft.Request) *Server {
	s := &Server{
		service:  service,
		defaults: defaults,
	}

	s.mcp = server.NewMCPServer(
		"seconddraft",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(draftEmailTool, s.handleDraftEmail)
	s.mcp.AddTool(buildPromptTool, s.handleBuildPrompt)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
