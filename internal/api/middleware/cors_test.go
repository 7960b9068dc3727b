package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/recipe-share/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "wildcard allows any origin",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "listed origin is echoed",
			allowed:    []string{"https://recipes.example.com/"},
			method:     http.MethodGet,
			origin:     "https://recipes.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "https://recipes.example.com",
		},
		{
			name:       "unlisted origin gets no header",
			allowed:    []string{"https://recipes.example.com"},
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight short circuits",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			preflight:  true,
			wantStatus: http.StatusNoContent,
			wantOrigin: "*",
		},
		{
			name:       "no origin header",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/recipes", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()

			middleware.CORS(tt.allowed)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
