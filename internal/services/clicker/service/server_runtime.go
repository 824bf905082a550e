package service

import (
	"context"
	"fmt"
	"net/http"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves streamable MCP plus the web shell over HTTP.
	TransportHTTP TransportKind = "http"
)

// defaultHTTPAddr keeps the HTTP transport local unless configured otherwise.
const defaultHTTPAddr = "localhost:8787"

// Config configures how the MCP server is exposed.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string
	// AllowedHosts extends the loopback Host/Origin allowlist. "*" allows any host.
	AllowedHosts []string
	// Mount wraps the guarded MCP handler into the full HTTP surface. Nil
	// serves the MCP endpoint alone.
	Mount func(mcpHandler http.Handler) http.Handler
}

// ParseTransport resolves a transport name. Empty selects stdio.
func ParseTransport(value string) (TransportKind, error) {
	switch TransportKind(value) {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("transport %q is not supported", value)
	}
}

// Run serves the MCP server on the configured transport until ctx ends.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return s.Serve(ctx)
	case TransportHTTP:
		addr := cfg.HTTPAddr
		if addr == "" {
			addr = defaultHTTPAddr
		}
		transport := NewHTTPTransport(addr, s.mcpServer, cfg.AllowedHosts)
		return transport.Start(ctx, cfg.Mount)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
