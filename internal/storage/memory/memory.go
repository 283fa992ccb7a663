// Package memory provides in-process storage implementations.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
)

// PreferencesStore keeps preferences in a map guarded by a RWMutex.
type PreferencesStore struct {
	mu    sync.RWMutex
	prefs map[string]preferences.Preferences
}

// NewPreferencesStore returns an empty store.
func NewPreferencesStore() *PreferencesStore {
	return &PreferencesStore{prefs: map[string]preferences.Preferences{}}
}

// GetPreferences implements storage.PreferencesStore.
func (s *PreferencesStore) GetPreferences(ctx context.Context, deviceID string) (preferences.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return preferences.Preferences{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[strings.TrimSpace(deviceID)]
	if !ok {
		return preferences.Preferences{}, storage.ErrNotFound
	}
	return p, nil
}

// PutPreferences implements storage.PreferencesStore.
func (s *PreferencesStore) PutPreferences(ctx context.Context, deviceID string, prefs preferences.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return fmt.Errorf("device id is required")
	}
	if err := prefs.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[deviceID] = prefs
	return nil
}

// CatalogStore keeps catalogs by locale.
type CatalogStore struct {
	mu       sync.RWMutex
	catalogs map[string]*catalog.Catalog
}

// NewCatalogStore returns an empty store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{catalogs: map[string]*catalog.Catalog{}}
}

// PutCatalog implements storage.CatalogStore. Catalogs are immutable, so
// the pointer is stored directly.
func (s *CatalogStore) PutCatalog(ctx context.Context, c *catalog.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("catalog is required")
	}
	locale := strings.TrimSpace(c.Metadata().Locale)
	if locale == "" {
		return fmt.Errorf("catalog locale is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs[locale] = c
	return nil
}

// GetCatalog implements storage.CatalogStore.
func (s *CatalogStore) GetCatalog(ctx context.Context, locale string) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.catalogs[strings.TrimSpace(locale)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return c, nil
}

// ListLocales implements storage.CatalogStore.
func (s *CatalogStore) ListLocales(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.catalogs))
	for locale := range s.catalogs {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out, nil
}

var (
	_ storage.PreferencesStore = (*PreferencesStore)(nil)
	_ storage.CatalogStore     = (*CatalogStore)(nil)
)
