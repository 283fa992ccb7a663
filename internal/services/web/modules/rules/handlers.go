package rules

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/rules/filter"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/pagerender"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/weberror"
	"github.com/louisbranch/gmscreen/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18nhttp.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	state := filter.StateFromValues(r.URL.Query())
	view := h.service.page(httpx.RequestContext(r), state, loc)
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    templates.T(loc, "rules.title"),
		Fragment: templates.RulesPage(view, loc),
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (h handlers) handleJump(w http.ResponseWriter, r *http.Request) {
	state := filter.StateFromValues(r.URL.Query())
	location, err := h.service.jump(httpx.RequestContext(r), state, r.PathValue("id"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	httpx.WriteRedirect(w, r, location, http.StatusFound)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
