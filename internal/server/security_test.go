package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-api-key-123"

	tests := []struct {
		name       string
		configured string
		path       string
		key        string
		wantStatus int
	}{
		{"valid key", apiKey, "/api/v1/garden/trees", apiKey, http.StatusOK},
		{"missing key", apiKey, "/api/v1/garden/trees", "", http.StatusUnauthorized},
		{"wrong key", apiKey, "/api/v1/garden/trees", "nope", http.StatusUnauthorized},
		{"no key configured rejects everything", "", "/api/v1/checkin", "", http.StatusUnauthorized},
		{"healthz is public", apiKey, "/healthz", "", http.StatusOK},
		{"metrics is public", apiKey, "/metrics", "", http.StatusOK},
		{"swagger is public", apiKey, "/swagger/index.html", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector(0, 0)
			h := AuthMiddleware(tt.configured, nil, detector)(okHandler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector(0, 0)
	h := AuthMiddleware("secret", nil, detector)(okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/checkin/status", nil)
		req.RemoteAddr = "10.0.0.9:4242"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestRateGuard(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector(3, time.Minute)
	detector.now = func() time.Time { return now }
	detector.windowStart = now

	h := RateGuardMiddleware(nil, detector)(okHandler)
	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/garden/trees", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, hit("1.1.1.1:1000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit("1.1.1.1:1001"))
	assert.Equal(t, http.StatusOK, hit("2.2.2.2:1000"), "limits are per IP")

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit("1.1.1.1:1002"), "new window")
}

func TestNewSuspiciousActivityDetector_Defaults(t *testing.T) {
	d := NewSuspiciousActivityDetector(-1, 0)
	assert.Equal(t, DefaultRateLimit, d.limit)
	assert.Equal(t, DefaultRateWindow, d.window)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct peer", "203.0.113.5:5555", "", nil, "203.0.113.5"},
		{"untrusted peer ignores header", "203.0.113.5:5555", "1.2.3.4", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "6.6.6.6, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"remote without port", "198.51.100.7", "", nil, "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin", strings.NewReader(strings.Repeat("x", 17)))
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Error(t, readErr)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/checkin", bytes.NewReader([]byte(`{"a":1}`)))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NoError(t, readErr)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}
