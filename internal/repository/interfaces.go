package repository

import (
	"context"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/google/uuid"
)

// AccountRepository persists accounts. Lookups return domain.ErrNotFound when
// no row matches and Create returns domain.ErrConflict on a duplicate
// username or email.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Account, error)
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Account AccountRepository
	Recipe  RecipeRepository
}
