package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with typeforge-specific components.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *Deps
}

// NewServer creates a new MCP server with the provided dependencies.
func NewServer(deps *Deps) (*Server, error) {
	if deps == nil || deps.Config == nil {
		return nil, fmt.Errorf("deps with config is required")
	}
	if deps.Store == nil {
		deps.Store = NewResultStore()
	}

	s := &Server{deps: deps}
	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "typeforge",
			Version: "1.0.0",
		},
		nil,
	)
	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	Register(s.mcpServer, deps)

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
