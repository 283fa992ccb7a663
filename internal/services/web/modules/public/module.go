// Package public serves the landing page, health probe and the not-found
// fallback.
package public

import (
	"net/http"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Module mounts the root routes.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "public" }

// Mount builds the module handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
