package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// LayoutData is the shell state shared by every full page.
type LayoutData struct {
	Title       string
	Lang        string
	Loc         Localizer
	Preferences preferences.Preferences
	CurrentPath string
	Languages   []i18nhttp.LanguageOption
}

type navLink struct {
	href string
	key  string
}

var navLinks = []navLink{
	{href: routepath.RulesPrefix, key: "nav.rules"},
	{href: routepath.DicePrefix, key: "nav.dice"},
	{href: routepath.SettingsPrefix, key: "nav.settings"},
}

// PageTitle joins a page title with the application name.
func PageTitle(title string, loc Localizer) string {
	app := T(loc, "app.title")
	title = strings.TrimSpace(title)
	if title == "" || title == app {
		return app
	}
	return title + " | " + app
}

// Layout renders the full document shell around the child component. The
// preferences drive the theme, font size, motion and sound attributes.
func Layout(data LayoutData) templ.Component {
	prefs := data.Preferences.Normalize()
	return component(func(ctx context.Context, h *html) {
		h.raw("<!doctype html>\n<html")
		h.attr("lang", data.Lang)
		h.attr("data-theme", string(prefs.Theme))
		h.attr("data-reduce-motion", strconv.FormatBool(prefs.ReduceMotion))
		h.attr("data-sound", strconv.FormatBool(prefs.Sound))
		h.attr("class", prefs.FontClass())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(PageTitle(data.Title, data.Loc))
		h.raw(`</title><link rel="stylesheet" href="/static/app.css"><script src="/static/app.js" defer></script></head><body>`)
		h.raw(`<a class="skip-link" href="#main">`)
		h.text(T(data.Loc, "app.skip_to_content"))
		h.raw(`</a><header class="shell-header"><nav class="shell-nav"`)
		h.attr("aria-label", T(data.Loc, "nav.home"))
		h.raw(`><a class="brand" href="/">`)
		h.text(T(data.Loc, "app.title"))
		h.raw(`</a><ul>`)
		for _, link := range navLinks {
			h.raw(`<li><a`)
			h.attr("href", link.href)
			if strings.HasPrefix(data.CurrentPath, link.href) {
				h.attr("aria-current", "page")
			}
			h.raw(">")
			h.text(T(data.Loc, link.key))
			h.raw("</a></li>")
		}
		h.raw(`</ul>`)
		languageSwitcher(h, data)
		h.raw(`</nav></header>`)
		h.render(ctx, MainContent())
		h.raw(`</body></html>`)
	})
}

func languageSwitcher(h *html, data LayoutData) {
	if len(data.Languages) == 0 {
		return
	}
	h.raw(`<div class="lang-switch"><span>`)
	h.text(T(data.Loc, "nav.language"))
	h.raw(`</span>`)
	for _, option := range data.Languages {
		h.raw(`<a`)
		h.attr("href", option.URL)
		h.attr("hreflang", option.Tag)
		if option.Active {
			h.attr("aria-current", "true")
		}
		h.raw(">")
		h.text(option.Label)
		h.raw("</a>")
	}
	h.raw(`</div>`)
}

// MainContent wraps the child component in the swappable main region. HTMX
// responses render only this component.
func MainContent() templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<main id="main" tabindex="-1">`)
		children(ctx, h)
		h.raw(`</main>`)
	})
}
