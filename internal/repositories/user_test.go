package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var userColumns = []string{"user_id", "email", "password_hash", "first_name", "last_name", "is_active", "created_at", "updated_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, email, password_hash").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(userID, "alice@example.com", "hash", nil, nil, true, now, now))

		user, err := repo.GetByEmail(ctx, "Alice@Example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, email, password_hash").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, email, password_hash").
			WithArgs("bob@example.com").
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByEmail(ctx, "bob@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT user_id, email, password_hash").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID, "alice@example.com", "hash", nil, nil, true, now, now))

	user, err := repo.GetByID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "jane@example.com", "hash", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID))

	got, err := repo.Save(ctx, "Jane@Example.com", "hash", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(userID, "newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdatePassword(ctx, userID, "newhash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
