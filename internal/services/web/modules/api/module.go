// Package api serves the JSON rules and dice endpoints.
package api

import (
	"errors"
	"net/http"

	coredice "github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Module mounts the JSON API routes.
type Module struct {
	roller coredice.Roller
}

// New returns the API module with a crypto/rand seeded roller.
func New() Module {
	return Module{roller: coredice.NewRoller()}
}

// ID returns the module identifier.
func (Module) ID() string { return "api" }

// Mount builds the module handler from the shared catalog.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, errors.New("api catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(lookup.New(deps.Catalog), m.roller))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
