package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDessert   Category = "Dessert"
	CategorySnack     Category = "Snack"
)

// AllCategories returns the categories in menu order.
func AllCategories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", Errorf(ErrValidation, "unknown category %q", s)
	}
	return c, nil
}

type Recipe struct {
	ID           uuid.UUID                   `json:"_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string                      `json:"title" gorm:"not null"`
	Ingredients  datatypes.JSONSlice[string] `json:"ingredients" gorm:"type:jsonb;not null"`
	Instructions string                      `json:"instructions" gorm:"type:text;not null"`
	Category     Category                    `json:"category" gorm:"index;not null"`
	PhotoURL     string                      `json:"photoUrl" gorm:"not null"`
	CookingTime  int                         `json:"cookingTime" gorm:"not null"` // minutes
	CreatedBy    uuid.UUID                   `json:"createdBy" gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// Validate checks that every field a recipe requires is set.
func (r *Recipe) Validate() error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return NewError(ErrValidation, "title is required")
	case len(r.Ingredients) == 0:
		return NewError(ErrValidation, "at least one ingredient is required")
	case strings.TrimSpace(r.Instructions) == "":
		return NewError(ErrValidation, "instructions are required")
	case !r.Category.Valid():
		return Errorf(ErrValidation, "unknown category %q", r.Category)
	case strings.TrimSpace(r.PhotoURL) == "":
		return NewError(ErrValidation, "photoUrl is required")
	case r.CookingTime <= 0:
		return NewError(ErrValidation, "cookingTime must be a positive number of minutes")
	}

	for i, ingredient := range r.Ingredients {
		if strings.TrimSpace(ingredient) == "" {
			return Errorf(ErrValidation, "ingredient %d is empty", i+1)
		}
	}
	return nil
}

// RecipePatch carries a partial update. A nil field means "not provided" and
// leaves the stored value alone.
type RecipePatch struct {
	Title        *string
	Ingredients  *[]string
	Instructions *string
	Category     *Category
	PhotoURL     *string
	CookingTime  *int
}

func (p RecipePatch) Empty() bool {
	return p.Title == nil && p.Ingredients == nil && p.Instructions == nil &&
		p.Category == nil && p.PhotoURL == nil && p.CookingTime == nil
}

// Apply copies the provided fields of p onto r. The result still has to pass
// Validate before it is stored.
func (r *Recipe) Apply(p RecipePatch) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Ingredients != nil {
		r.Ingredients = datatypes.JSONSlice[string](*p.Ingredients)
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.PhotoURL != nil {
		r.PhotoURL = *p.PhotoURL
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
}

type RecipeFilter struct {
	Category *Category
}
