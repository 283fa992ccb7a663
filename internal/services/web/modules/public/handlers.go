package public

import (
	"io"
	"net/http"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/pagerender"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/weberror"
	"github.com/louisbranch/gmscreen/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18nhttp.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    templates.T(loc, "app.title"),
		Fragment: templates.Landing(loc),
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
