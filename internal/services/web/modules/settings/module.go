// Package settings serves the display and accessibility preferences form.
package settings

import (
	"net/http"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Module mounts the settings routes.
type Module struct{}

// New returns the settings module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "settings" }

// Mount builds the module handler around the shared preferences store.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.PreferencesStore), deps))
	return module.Mount{Prefix: routepath.SettingsPrefix, Handler: mux}, nil
}
