package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/models"
)

var testHasher = PasswordHasherFunc(func(password string) string { return "hashed:" + password })

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewUserRepository(db, testHasher, logger.Nop()).(*userRepository), mock
}

var testUserColumns = []string{"id", "username", "email", "password_hash", "is_active", "is_admin", "created_at", "updated_at"}

func userRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows(testUserColumns)
	for _, id := range ids {
		rows.AddRow(id, "user", "user@example.com", "hashed:pw", true, false,
			"2024-01-02 03:04:05", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	}
	return rows
}

func expectFetch(mock sqlmock.Sqlmock, pattern string, rows *sqlmock.Rows, args ...any) {
	mock.ExpectBegin()
	q := mock.ExpectQuery(pattern)
	if len(args) > 0 {
		q.WithArgs(toDriverValues(args)...)
	}
	q.WillReturnRows(rows)
	mock.ExpectCommit()
}

func toDriverValues(args []any) []driver.Value {
	values := make([]driver.Value, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return values
}

func TestUserRepository_GetUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `SELECT (.+) FROM users WHERE id = \? ORDER BY id LIMIT 1`, userRows(7), int64(7))

	user, err := repo.GetUserByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "user", user.Username)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "hashed:pw", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), user.CreatedAt)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `SELECT (.+) FROM users WHERE id = \?`, userRows())

	_, err := repo.GetUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_GetUserByUsernameAndEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `SELECT (.+) FROM users WHERE username = \?`, userRows(1), "user")
	expectFetch(mock, `SELECT (.+) FROM users WHERE email = \?`, userRows(1), "user@example.com")

	byName, err := repo.GetUserByUsername(context.Background(), "user")
	require.NoError(t, err)
	byEmail, err := repo.GetUserByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, byName, byEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetAllUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `SELECT (.+) FROM users ORDER BY id`, userRows(1, 2, 3))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int64(3), users[2].ID)
}

func TestUserRepository_GetAllUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `SELECT (.+) FROM users`, userRows())

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_GetAllUsers_BadColumn(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	rows := sqlmock.NewRows(testUserColumns).AddRow("x", "u", "e", "h", true, false, "bad", "bad")
	expectFetch(mock, `SELECT (.+) FROM users`, rows)

	_, err := repo.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedColumnType)
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	newUser := models.NewUser{Username: "user", Email: "user@example.com", Password: "pw", IsActive: true}

	expectFetch(mock, `WHERE username = \?`, userRows(), "user")
	expectFetch(mock, `WHERE email = \?`, userRows(), "user@example.com")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users \(username,email,password_hash,is_active,is_admin\) VALUES \(\?,\?,\?,\?,\?\)`).
		WithArgs("user", "user@example.com", "hashed:pw", true, false).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()
	expectFetch(mock, `WHERE id = \?`, userRows(11), int64(11))

	created, err := repo.CreateUser(context.Background(), newUser)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_Conflicts(t *testing.T) {
	t.Run("username checked first", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		expectFetch(mock, `WHERE username = \?`, userRows(1))

		_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "user", Email: "user@example.com"})
		assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		expectFetch(mock, `WHERE username = \?`, userRows())
		expectFetch(mock, `WHERE email = \?`, userRows(2))

		_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "other", Email: "user@example.com"})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("race lost on insert", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		expectFetch(mock, `WHERE username = \?`, userRows())
		expectFetch(mock, `WHERE email = \?`, userRows())
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").WillReturnError(&ConstraintError{
			Violation: ErrUniqueViolation,
			Column:    "email",
			Err:       errors.New("UNIQUE constraint failed: users.email"),
		})
		mock.ExpectRollback()

		_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "u", Email: "e"})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CreateUser_LookupError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "u", Email: "e"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET is_admin = \?, password_hash = \?, username = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs(true, "hashed:new", "renamed", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectFetch(mock, `WHERE id = \?`, userRows(4), int64(4))

	_, err := repo.UpdateUser(context.Background(), 4, models.UserPatch{
		Username: models.Some("renamed"),
		Password: models.Some("new"),
		IsAdmin:  models.Some(true),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser_EmptyPatchOnlyReads(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expectFetch(mock, `WHERE id = \?`, userRows(4), int64(4))

	user, err := repo.UpdateUser(context.Background(), 4, models.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.UpdateUser(context.Background(), 4, models.UserPatch{Email: models.Some("x@example.com")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateUser_UsernameConflict(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").WillReturnError(&ConstraintError{
		Violation: ErrUniqueViolation, Column: "username", Err: errors.New("unique"),
	})
	mock.ExpectRollback()

	_, err := repo.UpdateUser(context.Background(), 4, models.UserPatch{Username: models.Some("taken")})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserRepository_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \?`).WithArgs(int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "has items",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").WillReturnError(sqlite3.Error{
					Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey,
				})
				mock.ExpectRollback()
			},
			wantErr: ErrUserHasItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectBegin()
			tt.setup(mock)

			err := repo.DeleteUser(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
