package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type Account struct {
	ID       string `json:"_id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type Recipe struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
	PhotoURL     string   `json:"photoUrl"`
	CookingTime  int      `json:"cookingTime"`
	CreatedBy    string   `json:"createdBy,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Register creates a new account and returns it with its token
func (c *APIClient) Register(userName, email, password string) (*Account, error) {
	body := map[string]string{
		"userName": userName,
		"email":    email,
		"password": password,
	}

	var account Account
	if err := c.do(http.MethodPost, "/auth/register", body, "", http.StatusCreated, &account); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &account, nil
}

// Login exchanges credentials for a token
func (c *APIClient) Login(email, password string) (*Account, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var account Account
	if err := c.do(http.MethodPost, "/auth/login", body, "", http.StatusOK, &account); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &account, nil
}

// CreateRecipe stores a recipe owned by the token's account
func (c *APIClient) CreateRecipe(token string, recipe Recipe) (*Recipe, error) {
	var created Recipe
	if err := c.do(http.MethodPost, "/recipes", recipe, token, http.StatusCreated, &created); err != nil {
		return nil, fmt.Errorf("create recipe %q: %w", recipe.Title, err)
	}
	return &created, nil
}

// ListRecipes returns every recipe, optionally restricted to one category
func (c *APIClient) ListRecipes(category string) ([]Recipe, error) {
	path := "/recipes"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var recipes []Recipe
	if err := c.do(http.MethodGet, path, nil, "", http.StatusOK, &recipes); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// HTTP helpers

func (c *APIClient) do(method, path string, body interface{}, token string, wantStatus int, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr errorResponse
		bodyBytes, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
