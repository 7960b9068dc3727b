package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dom/recipe-share/internal/config"
	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrMissingFields      = domain.NewError(domain.ErrValidation, "Please fill all fields")
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthenticated, "Invalid credentials")
	ErrEmailExists        = domain.NewError(domain.ErrConflict, "User already exists")
	ErrUserNameExists     = domain.NewError(domain.ErrConflict, "Username already taken")
	ErrAccountGone        = domain.NewError(domain.ErrUnauthenticated, "Account no longer exists")
)

type AuthService struct {
	accountRepo repository.AccountRepository
	hasher      *PasswordHasher
	tokens      *TokenIssuer
}

func NewAuthService(accountRepo repository.AccountRepository, cfg *config.Config) (*AuthService, error) {
	tokens, err := NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	return &AuthService{
		accountRepo: accountRepo,
		hasher:      NewPasswordHasher(cfg.BcryptCost),
		tokens:      tokens,
	}, nil
}

type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Account *domain.Account
	Token   string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	userName := strings.TrimSpace(input.UserName)
	email := normalizeEmail(input.Email)
	if userName == "" || email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	// Check if email or username is taken
	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup account by email: %w", err)
	}

	if _, err := s.accountRepo.GetByUserName(ctx, userName); err == nil {
		return nil, ErrUserNameExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup account by username: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.New(),
		UserName:     userName,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// A concurrent registration can still win the unique index.
		if errors.Is(err, domain.ErrConflict) {
			if strings.Contains(err.Error(), "user_name") {
				return nil, ErrUserNameExists
			}
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return s.issue(account)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account by email: %w", err)
	}

	if !s.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(account)
}

// Authenticate resolves a bearer token to the live account it names.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	accountID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountGone
		}
		return nil, fmt.Errorf("lookup account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *AuthService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *AuthService) issue(account *domain.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{
		Account: account,
		Token:   token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
