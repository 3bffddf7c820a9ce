package di

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/password"
	"todo_backend/internal/platform/token"
)

// NewPasswordHasher creates the bcrypt hasher used for signup and login.
func NewPasswordHasher() *password.Hasher {
	return password.NewHasher(bcrypt.DefaultCost)
}

// NewTokenGenerator creates the JWT generator, warning when the built-in secret is in use.
func NewTokenGenerator(cfg config.JWTConfig) token.Generator {
	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET is not set; using the built-in development secret")
	}
	return token.NewGenerator(cfg.Secret, cfg.Expiration)
}
