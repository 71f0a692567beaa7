package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator converts driver errors into errors that also match the
// package constraint sentinels.
type ErrorClassificator interface {
	Classify(err error) error
}

// ConstraintError reports a constraint failure detected by the store.
// It matches both Violation and the original driver error with [errors.Is].
type ConstraintError struct {
	// Violation is [ErrUniqueViolation] or [ErrForeignKeyViolation].
	Violation error
	// Column is the offending column for unique violations, e.g. "email".
	Column string
	Err    error
}

func (e *ConstraintError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s on column %q: %v", e.Violation, e.Column, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Violation, e.Err)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Violation, e.Err}
}

const foreignKeyFailedMessage = "FOREIGN KEY constraint failed"

// SQLiteErrorClassifier implements [ErrorClassificator] for
// github.com/mattn/go-sqlite3 using extended result codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Unrecognised errors are returned
// unchanged.
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrStatementTimeout) {
		return fmt.Errorf("%w: %w", ErrStatementTimeout, err)
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &ConstraintError{
			Violation: ErrUniqueViolation,
			Column:    uniqueColumn(sqliteErr.Error()),
			Err:       err,
		}
	case sqlite3.ErrConstraintForeignKey:
		return &ConstraintError{Violation: ErrForeignKeyViolation, Err: err}
	}

	// ON DELETE RESTRICT fails with SQLITE_CONSTRAINT_TRIGGER, so the message
	// is the only reliable marker.
	if sqliteErr.Code == sqlite3.ErrConstraint && strings.Contains(sqliteErr.Error(), foreignKeyFailedMessage) {
		return &ConstraintError{Violation: ErrForeignKeyViolation, Err: err}
	}

	return err
}

// uniqueColumn extracts the column from messages such as
// "UNIQUE constraint failed: users.email".
func uniqueColumn(message string) string {
	_, columns, ok := strings.Cut(message, "constraint failed: ")
	if !ok {
		return ""
	}

	// composite constraints list several columns, the first one is reported
	first, _, _ := strings.Cut(columns, ",")
	if _, column, found := strings.Cut(first, "."); found {
		return strings.TrimSpace(column)
	}

	return strings.TrimSpace(first)
}

// uniqueViolationColumn returns the offending column when err is a unique
// violation.
func uniqueViolationColumn(err error) (string, bool) {
	var constraintErr *ConstraintError
	if errors.As(err, &constraintErr) && errors.Is(constraintErr.Violation, ErrUniqueViolation) {
		return constraintErr.Column, true
	}

	return "", errors.Is(err, ErrUniqueViolation)
}
