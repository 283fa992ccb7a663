// Package rules serves the rules reference page and cross-reference jumps.
package rules

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Module mounts the rules reference routes.
type Module struct{}

// New returns the rules module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "rules" }

// Mount builds the module handler from the shared catalog.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, errors.New("rules catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Catalog), deps))
	return module.Mount{Prefix: routepath.RulesPrefix, Handler: mux}, nil
}
