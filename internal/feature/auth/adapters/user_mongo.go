// Package adapters provides the MongoDB repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// userMongo is the MongoDB implementation of usecase.UserRepository.
type userMongo struct {
	users *mongo.Collection
}

// Compile-time check to ensure userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a userMongo backed by the given users collection.
func NewUserMongo(users *mongo.Collection) *userMongo {
	return &userMongo{users: users}
}

// EnsureIndexes creates the unique index on email.
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users.email index: %w", err)
	}
	return nil
}

// Create inserts the user and sets u.ID to the generated identifier.
// A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	res, err := r.users.InsertOne(ctx, UserDocumentFromEntity(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id.Hex()
	}
	return nil
}

// FindByEmail returns the user with the exact email, or usecase.ErrUserNotFound.
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc UserDocument
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return doc.ToEntity(), nil
}
