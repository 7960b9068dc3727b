package domain

import "github.com/google/uuid"

type RecipeEventType string

const (
	RecipeCreated RecipeEventType = "RECIPE_CREATED"
	RecipeUpdated RecipeEventType = "RECIPE_UPDATED"
	RecipeDeleted RecipeEventType = "RECIPE_DELETED"
)

// RecipeEvent describes a mutation that has been applied to the store.
// Recipe is nil for deletions.
type RecipeEvent struct {
	Type     RecipeEventType
	RecipeID uuid.UUID
	Recipe   *Recipe
}
