package settings

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	"github.com/louisbranch/gmscreen/internal/preferences"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/pagerender"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/weberror"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
	"github.com/louisbranch/gmscreen/internal/services/web/templates"
)

const savedParam = "saved"

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, templates.SettingsPageView{
		Preferences: h.deps.Preferences(r),
		Saved:       r.URL.Query().Get(savedParam) == "1",
	})
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, preferences.Default(), apperrors.EK(apperrors.KindInvalidInput, "error.invalid_input", "failed to parse settings form"))
		return
	}
	prefs, err := parseForm(r.PostForm)
	if err != nil {
		h.writeError(w, r, prefs, err)
		return
	}
	deviceID, err := devicecookie.Ensure(w, r)
	if err != nil {
		log.Printf("settings: %v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	if err := h.service.save(httpx.RequestContext(r), deviceID, prefs); err != nil {
		h.writeError(w, r, prefs, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.WithQuery(routepath.SettingsPrefix, savedParam+"=1"), http.StatusSeeOther)
}

// writeError re-renders the form with an inline message for client errors and
// falls back to the app error page otherwise.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, prefs preferences.Preferences, err error) {
	status := apperrors.HTTPStatus(err)
	if weberror.ShouldRenderAppError(status) {
		log.Printf("settings: %v", err)
		weberror.WriteAppError(w, r, status, h.deps)
		return
	}
	loc, _ := i18nhttp.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	h.renderPage(w, r, status, templates.SettingsPageView{
		Preferences: prefs,
		Error:       weberror.PublicMessage(loc, err),
	})
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, view templates.SettingsPageView) {
	loc, _ := i18nhttp.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      templates.T(loc, "settings.title"),
		StatusCode: status,
		Fragment:   templates.SettingsPage(view, loc),
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}
