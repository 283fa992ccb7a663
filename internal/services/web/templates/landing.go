package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// Landing renders the home page links.
func Landing(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="landing"><h1>`)
		h.text(T(loc, "app.title"))
		h.raw(`</h1><p class="tagline">`)
		h.text(T(loc, "landing.tagline"))
		h.raw(`</p><ul class="landing-links">`)
		for _, link := range []navLink{
			{href: routepath.RulesPrefix, key: "landing.rules"},
			{href: routepath.DicePrefix, key: "landing.dice"},
			{href: routepath.SettingsPrefix, key: "landing.settings"},
		} {
			h.raw(`<li><a`)
			h.attr("href", link.href)
			h.raw(">")
			h.text(T(loc, link.key))
			h.raw("</a></li>")
		}
		h.raw(`</ul></section>`)
	})
}
