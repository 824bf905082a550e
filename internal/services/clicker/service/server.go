package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ynizan/clicker-game/internal/platform/branding"
	"github.com/ynizan/clicker-game/internal/services/clicker/domain"
)

// serverVersion identifies the MCP server version.
const serverVersion = "1.0.0"

// Deps are the collaborators the MCP server exposes.
type Deps struct {
	Dispatcher *domain.Dispatcher
	// WidgetMarkup is the rendered widget served as a resource.
	WidgetMarkup string
	// DefaultUser names callers that carry no identity.
	DefaultUser string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New registers the economy tools and widget resource on a fresh MCP server.
func New(deps Deps) (*Server, error) {
	if deps.Dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}
	if strings.TrimSpace(deps.WidgetMarkup) == "" {
		return nil, fmt.Errorf("widget markup is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    branding.ServerName,
		Title:   branding.AppName,
		Version: serverVersion,
	}, nil)

	if err := registerMCPModules(mcpServerRegistrationAdapter{server: mcpServer}, newMCPRegistrationModules(deps)); err != nil {
		return nil, err
	}
	return &Server{mcpServer: mcpServer}, nil
}

// MCPServer exposes the underlying protocol server.
func (s *Server) MCPServer() *mcp.Server {
	if s == nil {
		return nil
	}
	return s.mcpServer
}

// Serve runs the MCP server on stdio until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
