// Package httpx provides HTTP middleware and response helpers used by web modules.
package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/louisbranch/gmscreen/internal/platform/id"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// contentSecurityPolicy matches the layout: every script and stylesheet is
// served from /static/ and nothing is inlined.
const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; frame-ancestors 'none'; base-uri 'self'; form-action 'self'"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

var fallbackRequestIDs atomic.Uint64

// Chain applies middleware in declaration order, so the first one listed
// sees the request first. Nil entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// RequestID keeps a well-formed inbound X-Request-ID or mints one, and
// echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if !validRequestID(rid) {
				rid = newRequestID()
			}
			r.Header.Set(requestIDHeader, rid)
			w.Header().Set(requestIDHeader, rid)
			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	if value, err := id.NewID(); err == nil {
		return "gms-" + value
	}
	return "gms-local-" + strconv.FormatUint(fallbackRequestIDs.Add(1), 10)
}

func validRequestID(value string) bool {
	if value == "" || len(value) > maxRequestIDLen {
		return false
	}
	for _, c := range value {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

// RequestIDFrom returns the correlation id of r, or "-".
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if rid := strings.TrimSpace(r.Header.Get(requestIDHeader)); rid != "" {
		return rid
	}
	return "-"
}

// SecurityHeaders sets the browser hardening headers every page carries.
func SecurityHeaders() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "same-origin")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", contentSecurityPolicy)
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverPanic logs a panic with its stack and answers 500. API paths get a
// JSON body; pages get plain text.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				method, path := "-", "-"
				if r != nil && r.URL != nil {
					method, path = r.Method, r.URL.Path
				}
				log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					method, path, RequestIDFrom(r), recovered, strings.TrimSpace(string(debug.Stack())))

				status := http.StatusInternalServerError
				if strings.HasPrefix(path, routepath.APIPrefix) {
					_ = WriteJSONError(w, status, http.StatusText(status))
					return
				}
				http.Error(w, http.StatusText(status), status)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
