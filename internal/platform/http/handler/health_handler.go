// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
)

const (
	selfTestPassword   = "test123"
	hashPreviewLength  = 30
	statusHealthy      = "healthy"
	statusUnhealthy    = "unhealthy"
	databaseConnected  = "connected"
	databaseDisconnect = "disconnected"
)

// Pinger checks connectivity to the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PasswordHasher is the part of the credential service exercised by the self test.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SystemHandler serves the root, health and self-test endpoints.
type SystemHandler struct {
	store  Pinger
	hasher PasswordHasher
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(store Pinger, hasher PasswordHasher) *SystemHandler {
	return &SystemHandler{store: store, hasher: hasher}
}

// Root reports that the backend is up.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Backend is running"})
}

// Health pings the store. The response is always 200; the body says whether the store is reachable.
func (h *SystemHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if err := h.store.Ping(c.Request.Context()); err != nil {
		slog.Warn("health check failed", "error", err)
		c.JSON(http.StatusOK, api.HealthResponse{
			Status:   statusUnhealthy,
			Database: databaseDisconnect,
			Error:    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, api.HealthResponse{Status: statusHealthy, Database: databaseConnected})
}

// AuthSelfTest hashes and verifies a fixed password to check the credential service.
func (h *SystemHandler) AuthSelfTest(c *gin.Context) {
	hashed, err := h.hasher.Hash(selfTestPassword)
	if err != nil {
		slog.Error("auth self test failed", "error", err)
		c.JSON(http.StatusOK, api.AuthSelfTestResponse{HashWorks: false, Error: err.Error()})
		return
	}

	preview := hashed
	if len(preview) > hashPreviewLength {
		preview = preview[:hashPreviewLength]
	}
	verified := h.hasher.Verify(selfTestPassword, hashed)
	c.JSON(http.StatusOK, api.AuthSelfTestResponse{
		HashWorks:   true,
		VerifyWorks: &verified,
		HashPreview: preview,
	})
}
