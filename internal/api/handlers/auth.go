package handlers

import (
	"net/http"

	"github.com/dom/recipe-share/internal/api/middleware"
	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountResponse struct {
	ID       string `json:"_id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

func newAccountResponse(account *domain.Account, token string) AccountResponse {
	return AccountResponse{
		ID:       account.ID.String(),
		UserName: account.UserName,
		Email:    account.Email,
		Token:    token,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "auth.Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, newAccountResponse(result.Account, result.Token))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "auth.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, newAccountResponse(result.Account, result.Token))
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.GetAccount(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, newAccountResponse(account, ""))
}
