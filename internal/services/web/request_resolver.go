package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/louisbranch/gmscreen/internal/platform/timeouts"
	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/gmscreen/internal/storage"
)

type requestState struct {
	languageOnce    sync.Once
	language        string
	preferencesOnce sync.Once
	preferences     preferences.Preferences
}

type requestStateKey struct{}

type requestResolver struct {
	store storage.PreferencesStore
}

func newRequestResolver(cfg Config) requestResolver {
	return requestResolver{store: cfg.PreferencesStore}
}

func (r requestResolver) resolveRequestLanguage(req *http.Request) string {
	state := requestStateFromRequest(req)
	if state == nil {
		return resolveLanguageUncached(req)
	}
	state.languageOnce.Do(func() {
		state.language = resolveLanguageUncached(req)
	})
	return state.language
}

func resolveLanguageUncached(req *http.Request) string {
	tag, _ := i18nhttp.ResolveTag(req)
	return tag.String()
}

func (r requestResolver) resolveRequestPreferences(req *http.Request) preferences.Preferences {
	state := requestStateFromRequest(req)
	if state == nil {
		return r.resolvePreferencesUncached(req)
	}
	state.preferencesOnce.Do(func() {
		state.preferences = r.resolvePreferencesUncached(req)
	})
	return state.preferences
}

func (r requestResolver) resolvePreferencesUncached(req *http.Request) preferences.Preferences {
	if r.store == nil || req == nil {
		return preferences.Default()
	}
	deviceID, ok := devicecookie.Read(req)
	if !ok {
		return preferences.Default()
	}
	ctx, cancel := context.WithTimeout(httpx.RequestContext(req), timeouts.StoreRequest)
	defer cancel()
	prefs, err := r.store.GetPreferences(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("load preferences request_id=%s: %v", httpx.RequestIDFrom(req), err)
		}
		return preferences.Default()
	}
	return prefs.Normalize()
}

func withRequestState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), requestStateKey{}, &requestState{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// withLanguageCookie persists an explicit supported lang query param before
// the module handler writes its response.
func withLanguageCookie() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r != nil && strings.TrimSpace(r.URL.Query().Get(i18nhttp.LangParam)) != "" {
				if tag, persist := i18nhttp.ResolveTag(r); persist {
					i18nhttp.SetLanguageCookie(w, tag)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestStateFromRequest(r *http.Request) *requestState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestStateKey{}).(*requestState)
	return state
}
