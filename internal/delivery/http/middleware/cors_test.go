package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"allowed get", []string{"https://parisjug.org/"}, http.MethodGet, "https://parisjug.org", http.StatusOK, "https://parisjug.org"},
		{"other origin", []string{"https://parisjug.org"}, http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"no origin header", []string{"*"}, http.MethodGet, "", http.StatusOK, ""},
		{"wildcard", []string{"*"}, http.MethodGet, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
		{"preflight allowed", []string{"https://parisjug.org"}, http.MethodOptions, "https://parisjug.org", http.StatusNoContent, "https://parisjug.org"},
		{"preflight refused", nil, http.MethodOptions, "https://parisjug.org", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/events/x", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
			if tt.method == http.MethodOptions && tt.wantOrigin != "" {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
