// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	authadapters "todo_backend/internal/feature/auth/adapters"
	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/mongodb"
)

// NewStore creates the MongoDB store and makes a best-effort attempt to
// create the users.email unique index. An unreachable server is logged, not
// fatal: requests fail individually until it comes back.
func NewStore(ctx context.Context, cfg config.MongoConfig) (*mongodb.Store, error) {
	store, err := mongodb.Connect(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.SelectionTimeout)
	defer cancel()
	if err := authadapters.NewUserMongo(store.Users()).EnsureIndexes(ctx); err != nil {
		slog.Warn("MongoDB unavailable at startup; continuing without index check", "error", err)
	}
	return store, nil
}
