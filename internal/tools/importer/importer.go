// Package importer validates catalog data files and loads them into the
// SQLite content store.
package importer

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	File   string
	DBPath string
	Locale string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "content.db"),
	}

	fs.StringVar(&cfg.File, "file", "", "catalog data file (.yaml, .yml or .json)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.StringVar(&cfg.Locale, "locale", "", "expected catalog locale; empty accepts the file's locale")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.File) == "" {
		return Config{}, errors.New("file is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return errors.New("file is required")
	}

	c, err := readCatalog(path, strings.TrimSpace(cfg.Locale))
	if err != nil {
		return err
	}
	meta := c.Metadata()

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d rule(s) for %s\n", c.Len(), meta.Locale)
		return err
	}

	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return errors.New("db-path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create content db dir: %w", err)
		}
	}
	store, err := sqlite.OpenContent(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	if err := importCatalog(ctx, store, c); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "imported %d rule(s) for %s into %s\n", c.Len(), meta.Locale, dbPath)
	return err
}

func readCatalog(path string, wantLocale string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	payload, err := catalog.DecodePayload(data, catalog.FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := validatePayload(payload, wantLocale); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	c, err := catalog.New(payload.Metadata(), payload.Entries())
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return c, nil
}

func validatePayload(payload catalog.Payload, wantLocale string) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	if wantLocale != "" && payload.Locale != wantLocale {
		return fmt.Errorf("locale mismatch: %s", payload.Locale)
	}
	return nil
}

func importCatalog(ctx context.Context, store storage.CatalogStore, c *catalog.Catalog) error {
	if store == nil {
		return errors.New("content store is required")
	}
	if err := store.PutCatalog(ctx, c); err != nil {
		return fmt.Errorf("import %s: %w", c.Metadata().Locale, err)
	}
	return nil
}
