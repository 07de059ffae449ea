// Package auth owns account registration and login for the resume editor.
// A profile is keyed by its owner's user id, so every protected route goes
// through this package's tokens.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// User is an account that owns at most one stored resume profile.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// TokenGenerator issues the signed token handed back on register/login.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
