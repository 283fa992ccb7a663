// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/storage"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ResolvePreferences returns the display preferences for a request.
type ResolvePreferences func(*http.Request) preferences.Preferences

// Dependencies carries the shared collaborators handed to every module.
type Dependencies struct {
	Catalog            *catalog.Catalog
	PreferencesStore   storage.PreferencesStore
	ResolveLanguage    ResolveLanguage
	ResolvePreferences ResolvePreferences
}

// Preferences resolves request preferences, falling back to defaults.
func (d Dependencies) Preferences(r *http.Request) preferences.Preferences {
	if d.ResolvePreferences == nil || r == nil {
		return preferences.Default()
	}
	return d.ResolvePreferences(r).Normalize()
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
