package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeResponse struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
	PhotoURL     string   `json:"photoUrl"`
	CookingTime  int      `json:"cookingTime"`
	CreatedBy    string   `json:"createdBy"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func TestRecipeHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	account, token := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	valid := func() map[string]interface{} {
		return testutil.NewRecipeBuilder().
			WithTitle("Banana Bread").
			WithCategory(domain.CategoryDessert).
			WithCookingTime(60).
			Request()
	}

	tests := []struct {
		name           string
		body           func() map[string]interface{}
		token          string
		expectedStatus int
	}{
		{
			name:           "successful creation",
			body:           valid,
			token:          token,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "without token",
			body:           valid,
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing title",
			body: func() map[string]interface{} {
				b := valid()
				delete(b, "title")
				return b
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown category",
			body: func() map[string]interface{} {
				b := valid()
				b["category"] = "Brunch"
				return b
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero cooking time",
			body: func() map[string]interface{} {
				b := valid()
				b["cookingTime"] = 0
				return b
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty ingredient list",
			body: func() map[string]interface{} {
				b := valid()
				b["ingredients"] = []string{}
				return b
			},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Do(t, http.MethodPost, ts.APIURL("/recipes"), tt.body(), tt.token)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var recipe recipeResponse
			testutil.AssertJSONResponse(t, resp, &recipe)
			assert.NotEmpty(t, recipe.ID)
			assert.Equal(t, "Banana Bread", recipe.Title)
			assert.Equal(t, "Dessert", recipe.Category)
			assert.Equal(t, 60, recipe.CookingTime)
			assert.Equal(t, account.ID.String(), recipe.CreatedBy)
			assert.NotEmpty(t, recipe.CreatedAt)
		})
	}

	// Only the successful request was stored
	resp := testutil.Do(t, http.MethodGet, ts.APIURL("/recipes"), nil, "")
	var recipes []recipeResponse
	testutil.AssertJSONResponse(t, resp, &recipes)
	assert.Len(t, recipes, 1)
}

func TestRecipeHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner, _ := testutil.NewAccountBuilder().Build(t, ts.DB.DB)

	testutil.NewRecipeBuilder().WithOwner(owner).WithTitle("Porridge").WithCategory(domain.CategoryBreakfast).Build(t, ts.DB.DB)
	testutil.NewRecipeBuilder().WithOwner(owner).WithTitle("Flan").WithCategory(domain.CategoryDessert).Build(t, ts.DB.DB)
	testutil.NewRecipeBuilder().WithOwner(owner).WithTitle("Pavlova").WithCategory(domain.CategoryDessert).Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedTitles []string
	}{
		{
			name:           "all recipes",
			query:          "",
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Porridge", "Flan", "Pavlova"},
		},
		{
			name:           "filtered by category",
			query:          "?category=Dessert",
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Flan", "Pavlova"},
		},
		{
			name:           "category with no recipes",
			query:          "?category=Snack",
			expectedStatus: http.StatusOK,
			expectedTitles: []string{},
		},
		{
			name:           "unknown category",
			query:          "?category=Brunch",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Do(t, http.MethodGet, ts.APIURL("/recipes"+tt.query), nil, "")
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var recipes []recipeResponse
			testutil.AssertJSONResponse(t, resp, &recipes)
			require.NotNil(t, recipes, "an empty list is [] not null")

			titles := make([]string, 0, len(recipes))
			for _, r := range recipes {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.expectedTitles, titles)
		})
	}
}

func TestRecipeHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner, _ := testutil.NewAccountBuilder().Build(t, ts.DB.DB)
	recipe := testutil.NewRecipeBuilder().WithOwner(owner).WithTitle("Ramen").Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{
			name:           "existing recipe",
			id:             recipe.ID.String(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown id",
			id:             uuid.New().String(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			id:             "not-a-uuid",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Do(t, http.MethodGet, ts.APIURL("/recipes/"+tt.id), nil, "")

			if tt.expectedStatus == http.StatusNotFound {
				testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Recipe not found")
				return
			}

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			var got recipeResponse
			testutil.AssertJSONResponse(t, resp, &got)
			assert.Equal(t, "Ramen", got.Title)
			assert.Equal(t, owner.ID.String(), got.CreatedBy)
		})
	}
}

func TestRecipeHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner, ownerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)
	_, strangerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	tests := []struct {
		name           string
		token          string
		missing        bool
		body           map[string]interface{}
		expectedStatus int
		expectedTitle  string
	}{
		{
			name:           "owner updates title only",
			token:          ownerToken,
			body:           map[string]interface{}{"title": "Better Title"},
			expectedStatus: http.StatusOK,
			expectedTitle:  "Better Title",
		},
		{
			name:           "stranger is forbidden",
			token:          strangerToken,
			body:           map[string]interface{}{"title": "Hijacked"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "without token",
			token:          "",
			body:           map[string]interface{}{"title": "Anonymous"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown recipe",
			token:          ownerToken,
			missing:        true,
			body:           map[string]interface{}{"title": "Ghost"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "explicitly empty title",
			token:          ownerToken,
			body:           map[string]interface{}{"title": ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty body changes nothing",
			token:          ownerToken,
			body:           map[string]interface{}{},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := testutil.NewRecipeBuilder().
				WithOwner(owner).
				WithTitle("Original Title").
				WithCategory(domain.CategoryDinner).
				WithCookingTime(45).
				Build(t, ts.DB.DB)

			id := original.ID
			if tt.missing {
				id = uuid.New()
			}

			resp := testutil.Do(t, http.MethodPut, ts.APIURL("/recipes/"+id.String()), tt.body, tt.token)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			// Read back what is stored
			stored := testutil.Do(t, http.MethodGet, ts.APIURL("/recipes/"+original.ID.String()), nil, "")
			var got recipeResponse
			testutil.AssertJSONResponse(t, stored, &got)

			expectedTitle := "Original Title"
			if tt.expectedTitle != "" {
				expectedTitle = tt.expectedTitle
			}
			assert.Equal(t, expectedTitle, got.Title)
			assert.Equal(t, "Dinner", got.Category)
			assert.Equal(t, 45, got.CookingTime)
			assert.Equal(t, []string(original.Ingredients), got.Ingredients)
			assert.Equal(t, owner.ID.String(), got.CreatedBy)
		})
	}
}

func TestRecipeHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner, ownerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)
	_, strangerToken := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	recipe := testutil.NewRecipeBuilder().WithOwner(owner).Build(t, ts.DB.DB)
	url := ts.APIURL("/recipes/" + recipe.ID.String())

	// Anonymous and foreign deletes are rejected
	resp := testutil.Do(t, http.MethodDelete, url, nil, "")
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

	resp = testutil.Do(t, http.MethodDelete, url, nil, strangerToken)
	testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "Not authorised")

	resp = testutil.Do(t, http.MethodGet, url, nil, "")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// Owner deletes
	resp = testutil.Do(t, http.MethodDelete, url, nil, ownerToken)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var body map[string]string
	testutil.AssertJSONResponse(t, resp, &body)
	assert.Equal(t, "Recipe deleted", body["message"])

	resp = testutil.Do(t, http.MethodGet, url, nil, "")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	resp = testutil.Do(t, http.MethodDelete, url, nil, ownerToken)
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}
