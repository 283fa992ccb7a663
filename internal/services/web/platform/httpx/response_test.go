package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
)

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(" POST ")(rr, httptest.NewRequest(http.MethodGet, "/api/dice/roll", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusCreated, map[string]int{"total": 9}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	var payload map[string]int
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["total"] != 9 {
		t.Fatalf("payload = %v", payload)
	}
	if err := WriteJSON(nil, http.StatusOK, nil); err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestWriteJSONAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{name: "invalid input", err: apperrors.E(apperrors.KindInvalidInput, "bad notation"), wantStatus: http.StatusBadRequest, wantText: "bad notation"},
		{name: "not found", err: apperrors.E(apperrors.KindNotFound, "rule not found"), wantStatus: http.StatusNotFound, wantText: "rule not found"},
		{name: "untyped", err: http.ErrBodyNotAllowed, wantStatus: http.StatusInternalServerError, wantText: http.StatusText(http.StatusInternalServerError)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			if err := WriteJSONAppError(rr, tc.err); err != nil {
				t.Fatalf("WriteJSONAppError() error = %v", err)
			}
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			var payload map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload["error"] != tc.wantText {
				t.Fatalf("error = %q, want %q", payload["error"], tc.wantText)
			}
		})
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("plain request reported as htmx")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatal("htmx request not detected")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("nil request reported as htmx")
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		htmx       bool
		status     int
		wantStatus int
		wantHeader string
	}{
		{name: "see other", status: http.StatusSeeOther, wantStatus: http.StatusSeeOther, wantHeader: "Location"},
		{name: "invalid status falls back", status: 0, wantStatus: http.StatusFound, wantHeader: "Location"},
		{name: "non redirect status falls back", status: http.StatusOK, wantStatus: http.StatusFound, wantHeader: "Location"},
		{name: "htmx", htmx: true, status: http.StatusFound, wantStatus: http.StatusOK, wantHeader: "HX-Redirect"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/rules/combat-initiative", nil)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rr := httptest.NewRecorder()
			WriteRedirect(rr, req, "/rules/?q=Initiative", tc.status)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get(tc.wantHeader); got != "/rules/?q=Initiative" {
				t.Fatalf("%s = %q", tc.wantHeader, got)
			}
		})
	}
}
