// Package dice serves the dice roller page.
package dice

import (
	"net/http"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Module mounts the dice roller routes.
type Module struct{}

// New returns the dice module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "dice" }

// Mount builds the module handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(), deps))
	return module.Mount{Prefix: routepath.DicePrefix, Handler: mux}, nil
}
