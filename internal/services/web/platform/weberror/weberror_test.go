package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusNotFound:            true,
		http.StatusConflict:            false,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.MustParse("en-US"))
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "localized key", err: apperrors.EK(apperrors.KindInvalidInput, "error.dice_seed", "bad seed"), want: "The seed must be a whole number."},
		{name: "unknown key uses message", err: apperrors.EK(apperrors.KindInvalidInput, "error.missing_key", "bad seed"), want: "bad seed"},
		{name: "untyped", err: errors.New("db exploded"), want: http.StatusText(http.StatusInternalServerError)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicMessage(loc, tc.err); got != tc.want {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteModuleErrorRendersAppShellForNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules/missing", nil)
	WriteModuleError(rr, req, apperrors.EK(apperrors.KindNotFound, "error.rule_not_found", "rule not found"), module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!doctype html>") || !strings.Contains(body, "Not found") {
		t.Fatalf("body = %s", body)
	}
}

func TestWriteModuleErrorPlainTextForClientErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settings/", nil)
	WriteModuleError(rr, req, apperrors.EK(apperrors.KindInvalidInput, "error.preferences_invalid", "bad theme"), module.Dependencies{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "One of the preference values is not supported." {
		t.Fatalf("body = %q", got)
	}
}

func TestWriteAppErrorHTMXRendersMainOnly(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules/", nil)
	req.Header.Set("HX-Request", "true")
	WriteAppError(rr, req, http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<!doctype html>") || !strings.HasPrefix(body, `<main id="main"`) {
		t.Fatalf("body = %s", body)
	}
}
