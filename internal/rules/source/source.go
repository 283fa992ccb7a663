// Package source picks the rules catalog a binary serves: an imported
// content database, a catalog data file, or the bundled catalog.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite"
)

// DefaultLocale is read from a content database when no locale is set.
const DefaultLocale = "en-US"

// Options selects a catalog. DBPath wins over File; with neither set the
// bundled catalog is used.
type Options struct {
	DBPath string
	File   string
	Locale string
}

// Kind names where a catalog came from.
type Kind string

const (
	KindDatabase Kind = "db"
	KindFile     Kind = "file"
	KindBundled  Kind = "bundled"
)

// Select reports which source opts resolves to.
func (opts Options) Select() Kind {
	switch {
	case strings.TrimSpace(opts.DBPath) != "":
		return KindDatabase
	case strings.TrimSpace(opts.File) != "":
		return KindFile
	default:
		return KindBundled
	}
}

// Load returns the catalog selected by opts.
func Load(ctx context.Context, opts Options) (*catalog.Catalog, error) {
	switch opts.Select() {
	case KindDatabase:
		return loadDatabase(ctx, strings.TrimSpace(opts.DBPath), strings.TrimSpace(opts.Locale))
	case KindFile:
		return catalog.LoadFile(strings.TrimSpace(opts.File))
	default:
		c, err := catalog.Bundled()
		if err != nil {
			return nil, fmt.Errorf("load bundled catalog: %w", err)
		}
		return c, nil
	}
}

func loadDatabase(ctx context.Context, path string, locale string) (*catalog.Catalog, error) {
	store, err := sqlite.OpenContent(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()
	return FromStore(ctx, store, locale)
}

// FromStore reads locale from store. A blank locale prefers DefaultLocale
// and falls back to the first stored locale.
func FromStore(ctx context.Context, store storage.CatalogStore, locale string) (*catalog.Catalog, error) {
	if store == nil {
		return nil, errors.New("content store is required")
	}
	if locale != "" {
		c, err := store.GetCatalog(ctx, locale)
		if err != nil {
			return nil, fmt.Errorf("get catalog %s: %w", locale, err)
		}
		return c, nil
	}

	locales, err := store.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("content store has no catalog: %w", storage.ErrNotFound)
	}
	locale = locales[0]
	for _, candidate := range locales {
		if candidate == DefaultLocale {
			locale = candidate
			break
		}
	}
	c, err := store.GetCatalog(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("get catalog %s: %w", locale, err)
	}
	return c, nil
}
