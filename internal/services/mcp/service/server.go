package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	"github.com/louisbranch/gmscreen/internal/services/mcp/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "GM Screen MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
	// serverInstructions is sent to clients during initialization.
	serverInstructions = "Look up tabletop rules with rules_search and rule_get. " +
		"Roll dice with dice_roll and resolve skill checks with skill_check. " +
		"The full catalog is also readable as the " + domain.CatalogResourceURI + " resource."
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Catalog   *catalog.Catalog
	Transport TransportKind
	// HTTPAddr defaults to localhost:8081 for the HTTP transport.
	HTTPAddr string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with the rules and dice tools bound to c.
func New(c *catalog.Catalog) (*Server, error) {
	return newServer(c, coredice.NewRoller())
}

func newServer(c *catalog.Catalog, roller coredice.Roller) (*Server, error) {
	if c == nil {
		return nil, errors.New("rules catalog is required")
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: serverVersion},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	for _, group := range capabilities(lookup.New(c), roller) {
		if err := group.install(mcpServer); err != nil {
			return nil, fmt.Errorf("install %s: %w", group.name, err)
		}
	}
	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		server, err := New(cfg.Catalog)
		if err != nil {
			return err
		}
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the MCP server on transport until the session ends
// or ctx is done. Context cancellation is a clean stop.
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
	return err
}
