package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/gmscreen/internal/preferences"
	module "github.com/louisbranch/gmscreen/internal/services/web/module"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
	"github.com/louisbranch/gmscreen/internal/storage/memory"
)

func testDependencies(store *memory.PreferencesStore) module.Dependencies {
	return module.Dependencies{
		PreferencesStore: store,
		ResolvePreferences: func(r *http.Request) preferences.Preferences {
			deviceID, ok := devicecookie.Read(r)
			if !ok {
				return preferences.Default()
			}
			prefs, err := store.GetPreferences(r.Context(), deviceID)
			if err != nil {
				return preferences.Default()
			}
			return prefs
		},
	}
}

func testMux(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.SettingsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func postForm(t *testing.T, h http.Handler, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, routepath.SettingsPrefix, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), module.Dependencies{}))
}

func TestSettingsRoutes(t *testing.T) {
	t.Parallel()

	h := testMux(t, testDependencies(memory.NewPreferencesStore()))
	tests := []struct {
		name       string
		method     string
		wantStatus int
		wantAllow  string
	}{
		{name: "get", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "delete rejected", method: http.MethodDelete, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tc.method, routepath.SettingsPrefix, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" && rr.Header().Get("Allow") != tc.wantAllow {
				t.Fatalf("Allow = %q", rr.Header().Get("Allow"))
			}
		})
	}
}

func TestPostPersistsAndRerendersWithTheme(t *testing.T) {
	t.Parallel()

	store := memory.NewPreferencesStore()
	h := testMux(t, testDependencies(store))
	form := url.Values{
		"theme":         {"high-contrast"},
		"font_size":     {"large"},
		"reduce_motion": {"0", "1"},
		"sound":         {"0"},
	}
	rr := postForm(t, h, form)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/settings/?saved=1" {
		t.Fatalf("Location = %q", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != devicecookie.Name {
		t.Fatalf("cookies = %+v", cookies)
	}

	stored, err := store.GetPreferences(context.Background(), cookies[0].Value)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	want := preferences.Preferences{Theme: preferences.ThemeHighContrast, FontSize: preferences.FontLarge, ReduceMotion: true, Sound: false}
	if stored != want {
		t.Fatalf("stored = %+v, want %+v", stored, want)
	}

	req := httptest.NewRequest(http.MethodGet, "/settings/?saved=1", nil)
	req.AddCookie(cookies[0])
	page := httptest.NewRecorder()
	h.ServeHTTP(page, req)
	body := page.Body.String()
	for _, marker := range []string{`data-theme="high-contrast"`, `class="font-large"`, `data-reduce-motion="true"`, `data-sound="false"`, "Preferences saved."} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestPostReusesDeviceCookie(t *testing.T) {
	t.Parallel()

	store := memory.NewPreferencesStore()
	h := testMux(t, testDependencies(store))
	first := postForm(t, h, url.Values{"theme": {"light"}, "font_size": {"small"}})
	cookie := first.Result().Cookies()[0]

	second := postForm(t, h, url.Values{"theme": {"dark"}, "font_size": {"medium"}}, cookie)
	if second.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", second.Code)
	}
	if len(second.Result().Cookies()) != 0 {
		t.Fatal("expected existing device cookie to be reused")
	}
	stored, err := store.GetPreferences(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if stored.Theme != preferences.ThemeDark {
		t.Fatalf("theme = %q", stored.Theme)
	}
}

func TestPostInvalidValuesReturnBadRequest(t *testing.T) {
	t.Parallel()

	store := memory.NewPreferencesStore()
	h := testMux(t, testDependencies(store))
	rr := postForm(t, h, url.Values{"theme": {"neon"}, "font_size": {"huge"}})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "One of the preference values is not supported.") {
		t.Fatalf("missing inline error: %s", body)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("invalid submission should not mint a device cookie")
	}
}

func TestPostWithoutStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	h := testMux(t, module.Dependencies{})
	rr := postForm(t, h, url.Values{"theme": {"dark"}, "font_size": {"medium"}})
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	prefs, err := parseForm(url.Values{"theme": {" Light "}, "font_size": {"LARGE"}, "sound": {"on"}})
	if err != nil {
		t.Fatalf("parseForm() error = %v", err)
	}
	if prefs.Theme != preferences.ThemeLight || prefs.FontSize != preferences.FontLarge || !prefs.Sound || prefs.ReduceMotion {
		t.Fatalf("prefs = %+v", prefs)
	}

	prefs, err = parseForm(url.Values{"theme": {"neon"}, "font_size": {"small"}})
	if !errors.Is(err, preferences.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if prefs.Theme != preferences.ThemeDark || prefs.FontSize != preferences.FontSmall {
		t.Fatalf("normalized prefs = %+v", prefs)
	}
}
