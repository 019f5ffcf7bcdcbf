package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User instance with an already-hashed password.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the user.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email is required")
	}
	if u.PasswordHash == "" {
		return NewValidationError("password hash is required")
	}
	return nil
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// CreateUser persists a new user and assigns its ID
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail retrieves a user by email; returns nil when absent
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves a user by ID; returns nil when absent
	GetUserByID(ctx context.Context, id string) (*User, error)
}
