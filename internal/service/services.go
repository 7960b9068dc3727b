package service

import (
	"github.com/dom/recipe-share/internal/config"
	"github.com/dom/recipe-share/internal/repository"
)

type Services struct {
	Auth   *AuthService
	Recipe *RecipeService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, events EventPublisher) (*Services, error) {
	auth, err := NewAuthService(repos.Account, cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:   auth,
		Recipe: NewRecipeService(repos.Recipe, events),
	}, nil
}
