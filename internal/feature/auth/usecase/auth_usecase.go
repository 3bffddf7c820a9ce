package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo_backend/internal/feature/auth/domain/entity"
)

// dummyHash is compared against when the email is unknown so that a failed
// login takes the same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and sets its ID.
	// It returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email.
	// It returns ErrUserNotFound if there is none.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator issues signed identity tokens.
type TokenGenerator interface {
	GenerateToken(email string) (string, error)
}

// authUsecase implements signup and login.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup registers a new user with a hashed password and returns it with its generated ID.
func (u *authUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns the user with a freshly issued token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// Always compare, even for unknown users.
	if !u.hasher.Verify(password, passwordHash) || err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return user, token, nil
}
