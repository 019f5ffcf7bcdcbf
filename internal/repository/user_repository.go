package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quill/internal/domain"
	"quill/internal/repository/models"
	"quill/internal/util"

	"github.com/jmoiron/sqlx"
)

// UserDatabaseAdapter implements domain.UserRepository using sqlx.DB
type UserDatabaseAdapter struct {
	db *sqlx.DB
}

// NewUserDatabaseAdapter creates a new instance of UserDatabaseAdapter
func NewUserDatabaseAdapter(db *sqlx.DB) domain.UserRepository {
	return &UserDatabaseAdapter{db: db}
}

const userSelectColumns = `
		id "id",
		name "name",
		email "email",
		password_hash "password_hash",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// CreateUser implements domain.UserRepository. It assigns the ID and
// timestamps, writing them back to the domain user on success.
func (a *UserDatabaseAdapter) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot create nil user")
	}
	modelUser := &models.User{
		ID:           util.NewULID(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	modelUser.UpdatedAt = modelUser.CreatedAt

	query := `INSERT INTO users (
		id, name, email, password_hash, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelUser.ID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = modelUser.ID
	user.CreatedAt = modelUser.CreatedAt
	user.UpdatedAt = modelUser.UpdatedAt
	return nil
}

// GetUserByEmail implements domain.UserRepository
func (a *UserDatabaseAdapter) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var modelUser models.User
	query := `SELECT ` + userSelectColumns + `
	FROM users
	WHERE email = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelUser, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&modelUser), nil
}

// GetUserByID implements domain.UserRepository
func (a *UserDatabaseAdapter) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var modelUser models.User
	query := `SELECT ` + userSelectColumns + `
	FROM users
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &modelUser, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id %s: %w", id, err)
	}
	return toDomainUser(&modelUser), nil
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
