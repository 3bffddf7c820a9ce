// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// Response details.
const (
	detailInvalidRequest     = "invalid request"
	detailUserAlreadyExists  = "User already exists"
	detailInvalidCredentials = "Invalid credentials"
	detailServerError        = "Server error"
	detailDatabaseError      = "Database error"
)

// AuthUsecase defines the use cases for authentication.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns it with its generated ID.
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	// Login authenticates the user and returns it with a signed token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
//   - 422 when the body is not valid JSON or lacks email/password
//   - 400 when the email is already registered
//   - 500 on any other failure
//   - 200 with the new id on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: detailInvalidRequest})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected", "error", err, "email", *req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: detailUserAlreadyExists})
			return
		}
		slog.Error("signup failed", "error", err, "email", *req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: detailServerError})
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.SignupResponse{Message: "Signup successful", ID: user.ID})
}

// Login handles POST /login.
//   - 422 when the body is not valid JSON or lacks email/password
//   - 401 for an unknown email or wrong password, without saying which
//   - 500 when the token cannot be signed
//   - 503 when the store fails
//   - 200 with a token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: detailInvalidRequest})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "error", err, "email", *req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: detailInvalidCredentials})
		case errors.Is(err, usecase.ErrTokenGeneration):
			slog.Error("login token issue failed", "error", err, "email", *req.Email)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: detailServerError})
		default:
			slog.Error("login store failure", "error", err, "email", *req.Email)
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Detail: detailDatabaseError})
		}
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserView(user),
	})
}
