package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"quill/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at", "deleted_at"}

func TestUserAdapter_CreateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Ada", "ada@example.com", "hashed", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	adapter := NewUserDatabaseAdapter(db)
	user := domain.NewUser("Ada", "ada@example.com", "hashed")

	require.NoError(t, adapter.CreateUser(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAdapter_GetUserByEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("user-1", "Ada", "ada@example.com", "hashed", now, now, nil)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	adapter := NewUserDatabaseAdapter(db)
	user, err := adapter.GetUserByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestUserAdapter_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	adapter := NewUserDatabaseAdapter(db)
	user, err := adapter.GetUserByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserAdapter_GetUserByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("user-1", "Ada", "ada@example.com", "hashed", now, now, nil)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("user-1").
		WillReturnRows(rows)

	adapter := NewUserDatabaseAdapter(db)
	user, err := adapter.GetUserByID(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ada", user.Name)
}
