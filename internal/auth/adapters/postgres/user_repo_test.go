package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemark/internal/auth/adapters/postgres"
	"notemark/internal/auth/domain/entities"
	"notemark/pkg/logger"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), log)
}

func testUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           "7f1b8d8e-4b9e-4a53-9b7e-0d0c8b4f4a11",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRows(u entities.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, name, email, password_hash, created_at, updated_at").
			WithArgs(user.ID).
			WillReturnRows(userRows(user))

		got, err := postgres.NewUserRepository(mock).FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, &user, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		got, err := postgres.NewUserRepository(mock).FindByID(ctx, "missing")

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		dbErr := errors.New("connection reset")
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(user.ID).
			WillReturnError(dbErr)

		got, err := postgres.NewUserRepository(mock).FindByID(ctx, user.ID)

		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users\\s+WHERE email = \\$1").
			WithArgs(user.Email).
			WillReturnRows(userRows(user))

		got, err := postgres.NewUserRepository(mock).FindByEmail(ctx, user.Email)

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE email = \\$1").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("created", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash).
			WillReturnRows(userRows(user))

		got, err := postgres.NewUserRepository(mock).Create(ctx, &entities.User{
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		got, err := postgres.NewUserRepository(mock).Create(ctx, &user)

		require.ErrorIs(t, err, entities.ErrDuplicateEmail)
		assert.Nil(t, got)
	})

	t.Run("other failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Name, user.Email, user.PasswordHash).
			WillReturnError(errors.New("disk full"))

		_, err := postgres.NewUserRepository(mock).Create(ctx, &user)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")
	})
}

func TestRepositoryFactory(t *testing.T) {
	factory := postgres.NewRepositoryFactory(newMock(t))
	assert.NotNil(t, factory.UserRepository())
}
