// Package web parses web command flags and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	platformcmd "github.com/louisbranch/gmscreen/internal/platform/cmd"
	"github.com/louisbranch/gmscreen/internal/rules/source"
	"github.com/louisbranch/gmscreen/internal/services/web"
	"github.com/louisbranch/gmscreen/internal/storage"
	"github.com/louisbranch/gmscreen/internal/storage/memory"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr      string `env:"WEB_HTTP_ADDR"       envDefault:"localhost:8080"`
	CatalogFile   string `env:"CATALOG_FILE"`
	ContentDB     string `env:"CONTENT_DB"`
	CatalogLocale string `env:"CATALOG_LOCALE"`
	PreferencesDB string `env:"WEB_PREFERENCES_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogFile, "catalog-file", cfg.CatalogFile, "catalog data file (.yaml or .json)")
	fs.StringVar(&cfg.ContentDB, "content-db", cfg.ContentDB, "imported content database; wins over -catalog-file")
	fs.StringVar(&cfg.CatalogLocale, "catalog-locale", cfg.CatalogLocale, "catalog locale to read from the content database")
	fs.StringVar(&cfg.PreferencesDB, "preferences-db", cfg.PreferencesDB, "preferences database; empty keeps preferences in memory")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Source returns the catalog selection for cfg.
func (cfg Config) Source() source.Options {
	return source.Options{DBPath: cfg.ContentDB, File: cfg.CatalogFile, Locale: cfg.CatalogLocale}
}

// Run starts the web service and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		c, err := source.Load(ctx, cfg.Source())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		log.Printf("catalog %s: %d rules (%s)", cfg.Source().Select(), c.Len(), c.Metadata().Locale)

		prefs, closePrefs, err := openPreferences(ctx, cfg.PreferencesDB)
		if err != nil {
			return err
		}
		defer closePrefs()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:         cfg.HTTPAddr,
			Catalog:          c,
			PreferencesStore: prefs,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}

func openPreferences(ctx context.Context, path string) (storage.PreferencesStore, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		log.Printf("preferences: in memory")
		return memory.NewPreferencesStore(), func() {}, nil
	}
	store, err := sqlite.OpenPreferences(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open preferences store: %w", err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Printf("close preferences store: %v", err)
		}
	}, nil
}
