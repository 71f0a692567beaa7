package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
)

func TestUniqueColumn(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{message: "UNIQUE constraint failed: users.email", want: "email"},
		{message: "UNIQUE constraint failed: users.username", want: "username"},
		{message: "UNIQUE constraint failed: t.a, t.b", want: "a"},
		{message: "UNIQUE constraint failed: name", want: "name"},
		{message: "constraint failed", want: ""},
		{message: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueColumn(tt.message))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.NoError(t, c.Classify(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, c.Classify(plain))

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	assert.Equal(t, error(busy), c.Classify(busy))

	unique := c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}))
	assert.ErrorIs(t, unique, ErrUniqueViolation)
	assert.NotErrorIs(t, unique, ErrForeignKeyViolation)

	fk := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})
	assert.ErrorIs(t, fk, ErrForeignKeyViolation)

	timeout := c.Classify(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, timeout, ErrStatementTimeout)
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)
}

func TestConstraintError(t *testing.T) {
	cause := errors.New("driver says no")
	err := &ConstraintError{Violation: ErrUniqueViolation, Column: "email", Err: cause}

	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"email"`)

	column, ok := uniqueViolationColumn(fmt.Errorf("outer: %w", err))
	require.True(t, ok)
	assert.Equal(t, "email", column)

	_, ok = uniqueViolationColumn(&ConstraintError{Violation: ErrForeignKeyViolation, Err: cause})
	assert.False(t, ok)
}

// newMigratedSQLite opens a private in-memory database with the schema applied.
func newMigratedSQLite(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{URL: "sqlite:///:memory:", StatementTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	return db
}

func TestSQLiteErrorClassifier_DriverErrors(t *testing.T) {
	db := newMigratedSQLite(t)
	ctx := context.Background()
	c := NewSQLiteErrorClassifier()

	_, err := db.ExecContext(ctx, `INSERT INTO users (username, email, password_hash) VALUES ('ada', 'ada@example.com', 'h')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO items (name, user_id) VALUES ('box', 1)`)
	require.NoError(t, err)

	tests := []struct {
		name      string
		statement string
		violation error
		column    string
	}{
		{
			name:      "duplicate username",
			statement: `INSERT INTO users (username, email, password_hash) VALUES ('ada', 'other@example.com', 'h')`,
			violation: ErrUniqueViolation,
			column:    "username",
		},
		{
			name:      "duplicate email",
			statement: `INSERT INTO users (username, email, password_hash) VALUES ('bob', 'ada@example.com', 'h')`,
			violation: ErrUniqueViolation,
			column:    "email",
		},
		{
			name:      "item for unknown user",
			statement: `INSERT INTO items (name, user_id) VALUES ('orphan', 404)`,
			violation: ErrForeignKeyViolation,
		},
		{
			name:      "restricted user delete",
			statement: `DELETE FROM users WHERE id = 1`,
			violation: ErrForeignKeyViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, driverErr := db.ExecContext(ctx, tt.statement)
			require.Error(t, driverErr)

			classified := c.Classify(driverErr)

			var constraintErr *ConstraintError
			require.ErrorAs(t, classified, &constraintErr)
			assert.ErrorIs(t, classified, tt.violation)
			assert.ErrorIs(t, classified, driverErr)
			assert.Equal(t, tt.column, constraintErr.Column)
		})
	}
}

func TestSQLiteErrorClassifier_ConstraintMessageWithoutExtendedCode(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	notNull := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull})
	assert.NotErrorIs(t, notNull, ErrForeignKeyViolation)
	assert.NotErrorIs(t, notNull, ErrUniqueViolation)
}
