package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/dom/recipe-share/internal/domain"
)

type contextKey string

const (
	AccountKey contextKey = "account"
)

// Authenticator resolves a bearer token to a live account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
}

// Auth rejects requests without a valid bearer token and stores the resolved
// account in the request context.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				writeMessage(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				writeMessage(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			account, err := authenticator.Authenticate(r.Context(), parts[1])
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthenticated) {
					log.Printf("ERROR [middleware.Auth] account lookup failed: %v", err)
					writeMessage(w, http.StatusInternalServerError, "Internal server error")
					return
				}

				log.Printf("ERROR [middleware.Auth] token rejected: %v", err)
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}

func WithAccount(ctx context.Context, account *domain.Account) context.Context {
	return context.WithValue(ctx, AccountKey, account)
}

func GetAccount(ctx context.Context) (*domain.Account, bool) {
	account, ok := ctx.Value(AccountKey).(*domain.Account)
	return account, ok && account != nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
