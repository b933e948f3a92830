package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gracechapel/api/internal/ctxkeys"
	"github.com/gracechapel/api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "email and password are required"})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown email and wrong password are indistinguishable on purpose
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid credentials"})
			return
		}
		respondFailure(w, err, nil, "login")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	user, token, err := h.authService.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Message})
		case errors.Is(err, service.ErrEmailAlreadyExists):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "email already exists"})
		default:
			respondFailure(w, err, nil, "register")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "registration successful",
		"user":    user,
		"token":   token,
	})
}

// Verify runs behind the auth gate; reaching it means the token was valid and
// the principal resolved.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"valid": true,
	})
}
