// Package quotemcp exposes quote pricing as MCP tools over stdio, so an
// assistant can price a kitchen with the same rules as the questionnaire.
package quotemcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/quoter/internal/logger"
)

// Server holds the MCP server and the deployment settings the tools price with.
type Server struct {
	mcpServer *server.MCPServer
	rate      float64
	company   string
}

// New creates a server whose quotes start at pricePerFoot. Tools are
// registered immediately; nothing is served until Serve is called.
func New(pricePerFoot float64, company, version string) *Server {
	s := &Server{
		rate:    pricePerFoot,
		company: company,
	}
	s.mcpServer = server.NewMCPServer(
		"quoter",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// Serve answers MCP requests read from in until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logger.Debug("Serving quote MCP tools over stdio (rate %g)", s.rate)
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}
