package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// SettingsPageView is the preferences form.
type SettingsPageView struct {
	Preferences preferences.Preferences
	Error       string
	Saved       bool
}

var themeLabelKeys = map[preferences.Theme]string{
	preferences.ThemeDark:         "settings.theme_dark",
	preferences.ThemeLight:        "settings.theme_light",
	preferences.ThemeHighContrast: "settings.theme_high_contrast",
}

var fontLabelKeys = map[preferences.FontSize]string{
	preferences.FontSmall:  "settings.font_small",
	preferences.FontMedium: "settings.font_medium",
	preferences.FontLarge:  "settings.font_large",
}

// SettingsPage renders the preferences form.
func SettingsPage(view SettingsPageView, loc Localizer) templ.Component {
	prefs := view.Preferences
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="settings"><h1>`)
		h.text(T(loc, "settings.title"))
		h.raw(`</h1>`)
		inlineError(h, view.Error)
		if view.Saved {
			h.raw(`<p class="form-saved" role="status">`)
			h.text(T(loc, "settings.saved"))
			h.raw(`</p>`)
		}
		h.raw(`<form class="settings-form" method="post"`)
		h.attr("action", routepath.SettingsPrefix)
		h.raw(`><fieldset><legend>`)
		h.text(T(loc, "settings.theme"))
		h.raw(`</legend>`)
		for _, theme := range preferences.Themes() {
			radio(h, "theme", string(theme), T(loc, themeLabelKeys[theme]), prefs.Theme == theme)
		}
		h.raw(`</fieldset><fieldset><legend>`)
		h.text(T(loc, "settings.font_size"))
		h.raw(`</legend>`)
		for _, size := range preferences.FontSizes() {
			radio(h, "font_size", string(size), T(loc, fontLabelKeys[size]), prefs.FontSize == size)
		}
		h.raw(`</fieldset>`)
		checkbox(h, "reduce_motion", T(loc, "settings.reduce_motion"), prefs.ReduceMotion)
		checkbox(h, "sound", T(loc, "settings.sound"), prefs.Sound)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "settings.save"))
		h.raw(`</button></form></section>`)
	})
}

func radio(h *html, name string, value string, label string, checked bool) {
	h.raw(`<label class="radio"><input type="radio"`)
	h.attr("name", name)
	h.attr("value", value)
	h.flag("checked", checked)
	h.raw(`> `)
	h.text(label)
	h.raw(`</label>`)
}

func checkbox(h *html, name string, label string, checked bool) {
	h.raw(`<input type="hidden" value="0"`)
	h.attr("name", name)
	h.raw(`><label class="checkbox"><input type="checkbox" value="1"`)
	h.attr("name", name)
	h.flag("checked", checked)
	h.raw(`> `)
	h.text(label)
	h.raw(`</label>`)
}
