package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrRecipeNotFound = domain.NewError(domain.ErrNotFound, "Recipe not found")
	ErrNotRecipeOwner = domain.NewError(domain.ErrForbidden, "Not authorised to modify this recipe")
	ErrNoAccount      = domain.NewError(domain.ErrUnauthenticated, "Not authenticated")
)

// EventPublisher receives every recipe mutation after it has been stored.
type EventPublisher interface {
	Publish(event domain.RecipeEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.RecipeEvent) {}

type RecipeService struct {
	recipeRepo repository.RecipeRepository
	events     EventPublisher
}

func NewRecipeService(recipeRepo repository.RecipeRepository, events EventPublisher) *RecipeService {
	if events == nil {
		events = noopPublisher{}
	}
	return &RecipeService{
		recipeRepo: recipeRepo,
		events:     events,
	}
}

type RecipeInput struct {
	Title        string
	Ingredients  []string
	Instructions string
	Category     domain.Category
	PhotoURL     string
	CookingTime  int
}

func (s *RecipeService) Create(ctx context.Context, owner *domain.Account, input RecipeInput) (*domain.Recipe, error) {
	if owner == nil {
		return nil, ErrNoAccount
	}

	now := time.Now()
	recipe := &domain.Recipe{
		ID:           uuid.New(),
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Category:     input.Category,
		PhotoURL:     input.PhotoURL,
		CookingTime:  input.CookingTime,
		CreatedBy:    owner.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.events.Publish(domain.RecipeEvent{Type: domain.RecipeCreated, RecipeID: recipe.ID, Recipe: recipe})
	return recipe, nil
}

func (s *RecipeService) List(ctx context.Context, filter domain.RecipeFilter) ([]*domain.Recipe, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, domain.Errorf(domain.ErrValidation, "unknown category %q", *filter.Category)
	}
	return s.recipeRepo.List(ctx, filter)
}

func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return recipe, nil
}

// Update applies patch to the recipe if actor created it. Only provided
// fields change.
func (s *RecipeService) Update(ctx context.Context, actor *domain.Account, id uuid.UUID, patch domain.RecipePatch) (*domain.Recipe, error) {
	recipe, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return recipe, nil
	}

	updated := *recipe
	updated.Apply(patch)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()

	if err := s.recipeRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("update recipe %s: %w", id, err)
	}

	s.events.Publish(domain.RecipeEvent{Type: domain.RecipeUpdated, RecipeID: updated.ID, Recipe: &updated})
	return &updated, nil
}

func (s *RecipeService) Delete(ctx context.Context, actor *domain.Account, id uuid.UUID) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}

	s.events.Publish(domain.RecipeEvent{Type: domain.RecipeDeleted, RecipeID: id})
	return nil
}

// authorize loads the recipe and checks that actor owns it.
func (s *RecipeService) authorize(ctx context.Context, actor *domain.Account, id uuid.UUID) (*domain.Recipe, error) {
	if actor == nil {
		return nil, ErrNoAccount
	}

	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(recipe) {
		return nil, ErrNotRecipeOwner
	}
	return recipe, nil
}
