package postgres

import (
	"context"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *recipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	return translateError(r.db.WithContext(ctx).Create(recipe).Error)
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &recipe, nil
}

// List returns recipes in insertion order, optionally narrowed to one category.
func (r *recipeRepository) List(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	recipes := make([]*domain.Recipe, 0)
	if err := query.Find(&recipes).Error; err != nil {
		return nil, translateError(err)
	}
	return recipes, nil
}

// Update writes every mutable column of recipe. The owner and creation time
// are never rewritten.
func (r *recipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(recipe).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(recipe)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
