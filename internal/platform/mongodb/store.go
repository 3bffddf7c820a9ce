// Package mongodb owns the process-wide MongoDB client and its collections.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"todo_backend/internal/platform/config"
)

// Collection names.
const (
	UsersCollection = "users"
	TasksCollection = "tasks"
)

// Store wraps a pooled MongoDB client bound to a single database.
// It is safe for concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates a client for cfg.URL. It does not wait for a server:
// an unreachable store only makes individual operations fail, after at
// most cfg.SelectionTimeout.
func Connect(cfg config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(cfg.SelectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	slog.Info("mongo client created", "database", cfg.Database, "selection_timeout", cfg.SelectionTimeout)
	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Users returns the users collection.
func (s *Store) Users() *mongo.Collection {
	return s.db.Collection(UsersCollection)
}

// Tasks returns the tasks collection.
func (s *Store) Tasks() *mongo.Collection {
	return s.db.Collection(TasksCollection)
}

// DatabaseName returns the name of the bound database.
func (s *Store) DatabaseName() string {
	return s.db.Name()
}

// Ping runs the ping admin command against the server.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Disconnect closes all pooled connections.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
