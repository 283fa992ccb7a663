// Package devicecookie centralizes the device id cookie that keys stored
// preferences.
package devicecookie

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/gmscreen/internal/platform/id"
	"github.com/louisbranch/gmscreen/internal/services/web/platform/requestmeta"
)

// Name is the canonical device cookie name.
const Name = "gmscreen_device"

const maxAge = 2 * 365 * 24 * time.Hour

// Read returns the device id when the cookie holds a well-formed one.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if !id.Valid(value) {
		return "", false
	}
	return value, true
}

// Write sets the device cookie.
func Write(w http.ResponseWriter, r *http.Request, deviceID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(deviceID),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Ensure returns the request's device id, minting and writing a new one when
// the cookie is missing or malformed.
func Ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	if deviceID, ok := Read(r); ok {
		return deviceID, nil
	}
	deviceID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("mint device id: %w", err)
	}
	Write(w, r, deviceID)
	return deviceID, nil
}
