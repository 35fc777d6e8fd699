package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multivendor/internal/middleware"
	"multivendor/internal/store"
)

func TestHome(t *testing.T) {
	r := newTestRouter(store.Unavailable(), testConfig())

	w := doRequest(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Multivendor Ecommerce Backend Running"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflightIsOpen(t *testing.T) {
	r := newTestRouter(store.Unavailable(), testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/newsletter", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-custom-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "content-type,x-custom-token", w.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEqual(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSOnSimpleRequest(t *testing.T) {
	r := newTestRouter(store.Unavailable(), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/vendors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestRouter(store.Unavailable(), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))

	w = doRequest(t, r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "", want: 8},
		{raw: " 3 ", want: 3},
		{raw: "0", want: 8},
		{raw: "-1", want: 8},
		{raw: "250", want: 100},
		{raw: "2.5", wantErr: true},
		{raw: "ten", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseLimit(tt.raw, defaultProductLimit, 100)
		if tt.wantErr {
			assert.ErrorIs(t, err, errInvalidLimit, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}

	got, err := parseLimit("5000", defaultVendorLimit, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got, "no clamp without a max")
}
