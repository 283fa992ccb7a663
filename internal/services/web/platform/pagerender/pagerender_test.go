package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/louisbranch/gmscreen/internal/preferences"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
)

func TestWriteModulePageFullRequestRendersLayout(t *testing.T) {
	t.Parallel()

	deps := module.Dependencies{ResolvePreferences: func(*http.Request) preferences.Preferences {
		return preferences.Preferences{Theme: preferences.ThemeLight, FontSize: preferences.FontSmall}
	}}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules/?q=armor", nil)
	err := WriteModulePage(rr, req, deps, ModulePage{Title: "Rules", Fragment: templ.Raw("<p>fragment</p>")})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `data-theme="light"`, `class="font-small"`, "<p>fragment</p>", "/rules/?lang=pt-BR&amp;q=armor"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
}

func TestWriteModulePageHTMXRendersMainOnly(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules/", nil)
	req.Header.Set("HX-Request", "true")
	err := WriteModulePage(rr, req, module.Dependencies{}, ModulePage{StatusCode: http.StatusBadRequest, Fragment: templ.Raw("frag")})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := rr.Body.String(); got != `<main id="main" tabindex="-1">frag</main>` {
		t.Fatalf("body = %q", got)
	}
}

func TestWriteModulePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, nil, module.Dependencies{}, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage(nil) error = %v", err)
	}
}
