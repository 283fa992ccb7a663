// Package i18nhttp resolves the request language and builds localized
// printers and language switcher options for web pages.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/louisbranch/gmscreen/internal/platform/i18n"
	"github.com/louisbranch/gmscreen/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the device's language choice.
	LangCookieName = "gmscreen_lang"
)

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ensure the embedded message catalogs are registered with x/text.
var _ = catalog.Default()

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request. An explicit
// lang query param wins, then the lang cookie, then Accept-Language. The bool
// reports whether the tag came from the query and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if tag, ok := platformi18n.ParseTag(strings.TrimSpace(r.URL.Query().Get(LangParam))); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		return platformi18n.MatchTags(tags), false
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns the printer and language tag string for r. When
// resolveLanguage is nil the request is resolved directly and an explicit
// lang param is persisted.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	if resolveLanguage != nil {
		tag := NormalizeTag(resolveLanguage(r))
		return Printer(tag), tag.String()
	}
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// LanguageOptions returns the supported languages with links that switch the
// current page to each of them.
func LanguageOptions(loc Localizer, activeLang string, path string, rawQuery string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	activeTag := NormalizeTag(activeLang)
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := tag.String()
		if loc != nil {
			if resolved := strings.TrimSpace(loc.Sprintf(LanguageKeyLabel(tag))); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageKeyLabel maps a language tag to its nav label key, for example
// nav.lang_pt_br for pt-BR. English variants share nav.lang_en.
func LanguageKeyLabel(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "en" {
		return "nav.lang_en"
	}
	key := "nav.lang_" + base.String()
	if region, conf := tag.Region(); conf == language.Exact {
		key += "_" + strings.ToLower(region.String())
	}
	return key
}
