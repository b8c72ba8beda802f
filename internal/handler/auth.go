package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/service"
)

// Authenticator defines the interface for account operations
type Authenticator interface {
	Register(ctx context.Context, creds service.Credentials) (*model.User, error)
	Login(ctx context.Context, creds service.Credentials) (*service.LoginResult, error)
}

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// credentialsRequest is the wire format for register and login
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register - create an account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.auth.Register(r.Context(), service.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "username", Message: "username is required"}}))
		case errors.Is(err, service.ErrPasswordRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "password", Message: "password is required"}}))
		case errors.Is(err, service.ErrUsernameTaken):
			WriteError(w, model.NewConflictError("username already registered"))
		default:
			WriteError(w, model.NewInternalError("failed to register"))
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login handles POST /api/login - exchange credentials for an access token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.auth.Login(r.Context(), service.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "username", Message: "username is required"}}))
		case errors.Is(err, service.ErrPasswordRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "password", Message: "password is required"}}))
		case errors.Is(err, service.ErrInvalidCredentials):
			WriteError(w, model.NewUnauthorizedError("invalid username or password"))
		default:
			WriteError(w, model.NewInternalError("failed to log in"))
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"access_token": result.AccessToken,
		"username":     result.Username,
	})
}
