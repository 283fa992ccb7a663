package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  func() *http.Request
		want bool
	}{
		{
			name: "origin same host",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "http://gm.example.test/settings/", nil)
				req.Header.Set("Origin", "http://gm.example.test")
				return req
			},
			want: true,
		},
		{
			name: "referer same host behind tls proxy",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "http://gm.example.test/settings/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				req.Header.Set("Referer", "https://gm.example.test/settings/")
				return req
			},
			want: true,
		},
		{
			name: "scheme mismatch",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "http://gm.example.test/settings/", nil)
				req.Header.Set("Origin", "https://gm.example.test")
				return req
			},
			want: false,
		},
		{
			name: "origin missing port",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "http://gm.example.test:8080/settings/", nil)
				req.Header.Set("Origin", "http://gm.example.test")
				return req
			},
			want: false,
		},
		{
			name: "no headers",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "http://gm.example.test/settings/", nil)
			},
			want: false,
		},
		{
			name: "nil request",
			req:  func() *http.Request { return nil },
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProof(tc.req()); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatal("nil request must not be https")
	}
	req := httptest.NewRequest(http.MethodGet, "http://gm.example.test/", nil)
	if IsHTTPS(req) {
		t.Fatal("plain http request reported https")
	}
	req.Header.Set("X-Forwarded-Proto", "HTTPS")
	if !IsHTTPS(req) {
		t.Fatal("forwarded https not detected")
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req) {
		t.Fatal("tls request not detected")
	}
}
