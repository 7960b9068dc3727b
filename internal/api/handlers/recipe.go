package handlers

import (
	"net/http"

	"github.com/dom/recipe-share/internal/api/middleware"
	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

type CreateRecipeRequest struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
	PhotoURL     string   `json:"photoUrl"`
	CookingTime  int      `json:"cookingTime"`
}

// UpdateRecipeRequest uses pointers so that omitted fields can be told apart
// from fields sent with an empty value.
type UpdateRecipeRequest struct {
	Title        *string   `json:"title"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Category     *string   `json:"category"`
	PhotoURL     *string   `json:"photoUrl"`
	CookingTime  *int      `json:"cookingTime"`
}

func (req UpdateRecipeRequest) patch() domain.RecipePatch {
	p := domain.RecipePatch{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PhotoURL:     req.PhotoURL,
		CookingTime:  req.CookingTime,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		p.Category = &c
	}
	return p
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateRecipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.Create(r.Context(), account, service.RecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     domain.Category(req.Category),
		PhotoURL:     req.PhotoURL,
		CookingTime:  req.CookingTime,
	})
	if err != nil {
		writeServiceError(w, "recipe.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.RecipeFilter
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			writeServiceError(w, "recipe.List", err)
			return
		}
		filter.Category = &category
	}

	recipes, err := h.recipeService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, "recipe.List", err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(r)
	if !ok {
		writeServiceError(w, "recipe.Get", service.ErrRecipeNotFound)
		return
	}

	recipe, err := h.recipeService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "recipe.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := recipeID(r)
	if !ok {
		writeServiceError(w, "recipe.Update", service.ErrRecipeNotFound)
		return
	}

	var req UpdateRecipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.Update(r.Context(), account, id, req.patch())
	if err != nil {
		writeServiceError(w, "recipe.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := recipeID(r)
	if !ok {
		writeServiceError(w, "recipe.Delete", service.ErrRecipeNotFound)
		return
	}

	if err := h.recipeService.Delete(r.Context(), account, id); err != nil {
		writeServiceError(w, "recipe.Delete", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Recipe deleted"})
}

// recipeID parses the {id} route parameter. A malformed id can never match a
// stored recipe, so callers report it as not found.
func recipeID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
