// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	platformcmd "github.com/louisbranch/gmscreen/internal/platform/cmd"
	"github.com/louisbranch/gmscreen/internal/rules/source"
	mcpservice "github.com/louisbranch/gmscreen/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr      string `env:"MCP_HTTP_ADDR"  envDefault:"localhost:8081"`
	Transport     string `env:"MCP_TRANSPORT"  envDefault:"stdio"`
	CatalogFile   string `env:"CATALOG_FILE"`
	ContentDB     string `env:"CONTENT_DB"`
	CatalogLocale string `env:"CATALOG_LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.CatalogFile, "catalog-file", cfg.CatalogFile, "catalog data file (.yaml or .json)")
	fs.StringVar(&cfg.ContentDB, "content-db", cfg.ContentDB, "imported content database; wins over -catalog-file")
	fs.StringVar(&cfg.CatalogLocale, "catalog-locale", cfg.CatalogLocale, "catalog locale to read from the content database")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	switch mcpservice.TransportKind(cfg.Transport) {
	case mcpservice.TransportStdio, mcpservice.TransportHTTP:
	default:
		return Config{}, fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return cfg, nil
}

// Source returns the catalog selection for cfg.
func (cfg Config) Source() source.Options {
	return source.Options{DBPath: cfg.ContentDB, File: cfg.CatalogFile, Locale: cfg.CatalogLocale}
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		c, err := source.Load(ctx, cfg.Source())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		log.Printf("catalog %s: %d rules (%s)", cfg.Source().Select(), c.Len(), c.Metadata().Locale)

		return mcpservice.Run(ctx, mcpservice.Config{
			Catalog:   c,
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
		})
	})
}
