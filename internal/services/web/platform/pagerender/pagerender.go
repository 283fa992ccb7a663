// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WriteModulePage writes a module page using shared shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc, lang := i18nhttp.ResolveLocalizer(w, r, deps.ResolveLanguage)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.Header().Set("Vary", "HX-Request")
		w.WriteHeader(statusCode)
		return templates.MainContent().Render(ctx, w)
	}

	w.WriteHeader(statusCode)
	return templates.Layout(LayoutData(r, deps, page.Title, loc, lang)).Render(ctx, w)
}

// LayoutData builds the shell state for r.
func LayoutData(r *http.Request, deps module.Dependencies, title string, loc templates.Localizer, lang string) templates.LayoutData {
	data := templates.LayoutData{
		Title:       title,
		Lang:        lang,
		Loc:         loc,
		Preferences: deps.Preferences(r),
	}
	if r != nil && r.URL != nil {
		data.CurrentPath = r.URL.Path
		data.Languages = i18nhttp.LanguageOptions(loc, lang, r.URL.Path, r.URL.RawQuery)
	}
	return data
}
