// Package app composes web modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	PageModules  []module.Module
	APIModules   []module.Module
}

// Composer wires root mux mounts for each module group.
type Composer struct{}

// group is a set of modules that share a mount rule and middleware.
type group struct {
	label   string
	modules []module.Module
	api     bool
	wrap    func(http.Handler) http.Handler
}

// Compose builds a root HTTP handler from module groups. Page modules stay
// outside routepath.APIPrefix and API modules stay inside it.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	owners := make(map[string]string)
	groups := []group{
		{label: "page", modules: input.PageModules, wrap: requireDeviceSameOrigin()},
		{label: "api", modules: input.APIModules, api: true},
	}
	for _, g := range groups {
		for _, feature := range g.modules {
			if feature == nil {
				return nil, fmt.Errorf("%s module is nil", g.label)
			}
			prefix, handler, err := g.resolve(feature, input.Dependencies)
			if err != nil {
				return nil, err
			}
			if owner, taken := owners[prefix]; taken {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, owner)
			}
			owners[prefix] = feature.ID()
			root.Handle(prefix, handler)
		}
	}
	return root, nil
}

func (g group) resolve(feature module.Module, deps module.Dependencies) (string, http.Handler, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return "", nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	switch {
	case prefix == "":
		return "", nil, fmt.Errorf("mount module %q: prefix is required", feature.ID())
	case mount.Handler == nil:
		return "", nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
	case g.api && !strings.HasPrefix(prefix, routepath.APIPrefix):
		return "", nil, fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), routepath.APIPrefix, prefix)
	case !g.api && strings.HasPrefix(prefix, routepath.APIPrefix):
		return "", nil, fmt.Errorf("module %q has api prefix %q in page group", feature.ID(), prefix)
	}
	handler := mount.Handler
	if g.wrap != nil {
		handler = g.wrap(handler)
	}
	return prefix, handler, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// requireDeviceSameOrigin rejects cross-origin mutations from a browser that
// already carries a device cookie.
func requireDeviceSameOrigin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutation(r.Method) && hasDeviceCookie(r) && !requestmeta.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasDeviceCookie(r *http.Request) bool {
	_, ok := devicecookie.Read(r)
	return ok
}
