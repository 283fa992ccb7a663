package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CatalogStore persists imported rule catalogs, one per locale.
type CatalogStore interface {
	// PutCatalog replaces the catalog stored for c's locale.
	PutCatalog(ctx context.Context, c *catalog.Catalog) error
	// GetCatalog returns the catalog for locale, or ErrNotFound.
	GetCatalog(ctx context.Context, locale string) (*catalog.Catalog, error)
	// ListLocales returns the sorted locales with a stored catalog.
	ListLocales(ctx context.Context) ([]string, error)
}

// PreferencesStore persists shell preferences keyed by device id.
type PreferencesStore interface {
	// GetPreferences returns the saved preferences, or ErrNotFound.
	GetPreferences(ctx context.Context, deviceID string) (preferences.Preferences, error)
	// PutPreferences upserts the preferences for deviceID.
	PutPreferences(ctx context.Context, deviceID string, prefs preferences.Preferences) error
}
