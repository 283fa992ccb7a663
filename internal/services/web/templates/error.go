package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

// ErrorPageTitle returns the browser page title for app error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "page.not_found_title")
	}
	return T(loc, "page.error_title")
}

func errorMessage(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, "error.not_found")
	case http.StatusServiceUnavailable:
		return T(loc, "error.unavailable")
	default:
		return T(loc, "error.internal")
	}
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

// ErrorState renders the app-shell error body.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<section class="error-state" role="alert"><h1>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw(`</h1><p>`)
		h.text(errorMessage(statusCode, loc))
		h.raw(`</p><a`)
		h.attr("href", routepath.Root)
		h.raw(`>`)
		h.text(T(loc, "page.back_home"))
		h.raw(`</a></section>`)
	})
}

// inlineError renders a non-fatal error message inside a module page.
func inlineError(h *html, message string) {
	if message == "" {
		return
	}
	h.raw(`<p class="form-error" role="alert">`)
	h.text(message)
	h.raw(`</p>`)
}
