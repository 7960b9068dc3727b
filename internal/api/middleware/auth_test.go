package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/recipe-share/internal/api/middleware"
	"github.com/dom/recipe-share/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	accounts map[string]*domain.Account
	err      error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*domain.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	account, ok := f.accounts[token]
	if !ok {
		return nil, domain.NewError(domain.ErrUnauthenticated, "Invalid token")
	}
	return account, nil
}

func TestAuth(t *testing.T) {
	account := &domain.Account{ID: uuid.New(), UserName: "chef"}
	authenticator := &fakeAuthenticator{accounts: map[string]*domain.Account{"good-token": account}}

	tests := []struct {
		name        string
		header      string
		auth        middleware.Authenticator
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			auth:       authenticator,
			wantStatus: http.StatusOK,
		},
		{
			name:       "scheme is case insensitive",
			header:     "bearer good-token",
			auth:       authenticator,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing header",
			header:      "",
			auth:        authenticator,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header required",
		},
		{
			name:        "wrong scheme",
			header:      "Basic good-token",
			auth:        authenticator,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization header",
		},
		{
			name:        "scheme without token",
			header:      "Bearer ",
			auth:        authenticator,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization header",
		},
		{
			name:        "unknown token",
			header:      "Bearer bad-token",
			auth:        authenticator,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:        "store failure",
			header:      "Bearer good-token",
			auth:        &fakeAuthenticator{err: errors.New("connection reset")},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *domain.Account
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = middleware.GetAccount(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			middleware.Auth(tt.auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, account.ID, seen.ID)
				return
			}

			assert.Nil(t, seen, "handler must not run")
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestGetAccount(t *testing.T) {
	_, ok := middleware.GetAccount(context.Background())
	assert.False(t, ok)

	account := &domain.Account{ID: uuid.New()}
	got, ok := middleware.GetAccount(middleware.WithAccount(context.Background(), account))
	assert.True(t, ok)
	assert.Equal(t, account, got)
}
