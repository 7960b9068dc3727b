package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	userName string
	email    string
	password string
}

// NewAccountBuilder creates a new AccountBuilder with unique default values
func NewAccountBuilder() *AccountBuilder {
	suffix := uuid.New().String()[:8]
	return &AccountBuilder{
		userName: fmt.Sprintf("cook_%s", suffix),
		email:    fmt.Sprintf("cook_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUserName sets the username
func (b *AccountBuilder) WithUserName(name string) *AccountBuilder {
	b.userName = name
	return b
}

// WithEmail sets the email
func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

// Build creates the account in the database and returns it with the raw password
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	account := &domain.Account{
		ID:           uuid.New(),
		UserName:     b.userName,
		Email:        strings.ToLower(b.email),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// AuthResponse matches the API register/login response
type AuthResponse struct {
	ID       string `json:"_id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// BuildAndAuthenticate registers the account via the API and returns it with its token
func (b *AccountBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.Account, string) {
	t.Helper()

	reqBody := map[string]string{
		"userName": b.userName,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register account: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	accountID, _ := uuid.Parse(authResp.ID)
	account := &domain.Account{
		ID:       accountID,
		UserName: authResp.UserName,
		Email:    authResp.Email,
	}

	return account, authResp.Token
}

// RecipeBuilder creates test recipes with a builder pattern
type RecipeBuilder struct {
	owner        *domain.Account
	title        string
	ingredients  []string
	instructions string
	category     domain.Category
	photoURL     string
	cookingTime  int
}

// NewRecipeBuilder creates a new RecipeBuilder with default values
func NewRecipeBuilder() *RecipeBuilder {
	return &RecipeBuilder{
		title:        fmt.Sprintf("Recipe %s", uuid.New().String()[:8]),
		ingredients:  []string{"2 eggs", "1 cup flour", "1 cup milk"},
		instructions: "Whisk everything together and cook on a hot pan.",
		category:     domain.CategoryBreakfast,
		photoURL:     "https://images.example.com/pancakes.jpg",
		cookingTime:  20,
	}
}

// WithOwner sets the creating account
func (b *RecipeBuilder) WithOwner(owner *domain.Account) *RecipeBuilder {
	b.owner = owner
	return b
}

// WithTitle sets the title
func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.title = title
	return b
}

// WithCategory sets the category
func (b *RecipeBuilder) WithCategory(category domain.Category) *RecipeBuilder {
	b.category = category
	return b
}

// WithCookingTime sets the cooking time in minutes
func (b *RecipeBuilder) WithCookingTime(minutes int) *RecipeBuilder {
	b.cookingTime = minutes
	return b
}

// Request returns the recipe as an API request body
func (b *RecipeBuilder) Request() map[string]interface{} {
	return map[string]interface{}{
		"title":        b.title,
		"ingredients":  b.ingredients,
		"instructions": b.instructions,
		"category":     string(b.category),
		"photoUrl":     b.photoURL,
		"cookingTime":  b.cookingTime,
	}
}

// Build stores the recipe directly in the database
func (b *RecipeBuilder) Build(t *testing.T, db *gorm.DB) *domain.Recipe {
	t.Helper()

	if b.owner == nil {
		t.Fatalf("recipe builder requires an owner")
	}

	recipe := &domain.Recipe{
		ID:           uuid.New(),
		Title:        b.title,
		Ingredients:  b.ingredients,
		Instructions: b.instructions,
		Category:     b.category,
		PhotoURL:     b.photoURL,
		CookingTime:  b.cookingTime,
		CreatedBy:    b.owner.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}

	return recipe
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// Do sends an authenticated JSON request and returns the response
func Do(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(CreateAuthenticatedRequest(t, method, url, body, token))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() {
		resp.Body.Close()
	})
	return resp
}
