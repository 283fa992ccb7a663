package dice

import (
	"net/http"
	"strings"

	"github.com/louisbranch/gmscreen/internal/core/check"
	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
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
	query := r.URL.Query()
	view := templates.DicePageView{
		Notation:     strings.TrimSpace(query.Get("notation")),
		Seed:         strings.TrimSpace(query.Get("seed")),
		Base:         strings.TrimSpace(query.Get("check")),
		Difficulty:   strings.TrimSpace(query.Get("dv")),
		Difficulties: check.Difficulties(),
	}

	err := h.roll(r, &view)
	status := http.StatusOK
	if err != nil {
		status = apperrors.HTTPStatus(err)
		if weberror.ShouldRenderAppError(status) {
			weberror.WriteAppError(w, r, status, h.deps)
			return
		}
		view.Error = weberror.PublicMessage(loc, err)
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      templates.T(loc, "dice.title"),
		StatusCode: status,
		Fragment:   templates.DicePage(view, loc),
	}); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

// roll fills view with the requested roll or check. A request with neither
// only renders the forms.
func (h handlers) roll(r *http.Request, view *templates.DicePageView) error {
	if view.Notation == "" && view.Base == "" {
		return nil
	}
	seed, err := parseSeed(view.Seed)
	if err != nil {
		return err
	}
	ctx := httpx.RequestContext(r)
	if view.Notation != "" {
		roll, err := h.service.roll(ctx, view.Notation, seed)
		if err != nil {
			return err
		}
		view.Expression = roll.Expression
		view.Roll = &roll.Result
		return nil
	}
	result, err := h.service.skillCheck(ctx, view.Base, view.Difficulty, seed)
	if err != nil {
		return err
	}
	view.Check = &result
	return nil
}
