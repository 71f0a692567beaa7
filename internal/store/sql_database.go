// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/migrations"
)

// Mode selects what [DB.QueryOrExecute] returns.
type Mode int

const (
	// FetchOne returns the first row of the result set in Result.Row, or a
	// nil Row when the result set is empty.
	FetchOne Mode = iota + 1

	// FetchMany returns every row in store order in Result.Rows. The slice
	// is never nil.
	FetchMany

	// Execute runs a statement for its side effects and reports
	// Result.RowsAffected and, for INSERT statements, Result.LastInsertID.
	Execute
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case FetchOne:
		return "fetch_one"
	case FetchMany:
		return "fetch_many"
	case Execute:
		return "execute"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Row is a single result row keyed by column name.
type Row map[string]any

// Result is the outcome of a single [DB.QueryOrExecute] call. Only the
// fields relevant to the requested [Mode] are populated.
type Result struct {
	Row          Row
	Rows         []Row
	LastInsertID int64
	RowsAffected int64
}

// placeholder builds statements with "?" placeholders understood by SQLite.
var placeholder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// DB wraps *sql.DB with error classification and the per-statement deadline.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	statementTimeout   time.Duration
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// QueryOrExecute runs statement with args inside its own transaction.
//
// The transaction is committed only when the statement and result reading
// succeed; any failure rolls it back and is returned wrapped with one of
// the package sentinels. Constraint failures are additionally classified
// into [ErrUniqueViolation] or [ErrForeignKeyViolation], and an expired
// statement deadline into [ErrStatementTimeout].
func (db *DB) QueryOrExecute(ctx context.Context, statement string, args []any, mode Mode) (Result, error) {
	log := logger.FromContext(ctx)

	if mode != FetchOne && mode != FetchMany && mode != Execute {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownQueryMode, mode)
	}

	if db.statementTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.statementTimeout)
		defer cancel()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.QueryOrExecute").Msg("failed to begin transaction")
		return Result{}, db.classify(ctx, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	var result Result
	if mode == Execute {
		result, err = execute(ctx, tx, statement, args)
	} else {
		result, err = fetch(ctx, tx, statement, args, mode)
	}
	if err != nil {
		log.Err(err).
			Str("func", "DB.QueryOrExecute").
			Str("mode", mode.String()).
			Str("statement", statement).
			Msg("statement failed, rolling back")
		return Result{}, db.classify(ctx, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.QueryOrExecute").Msg("failed to commit transaction")
		return Result{}, db.classify(ctx, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return result, nil
}

// Build renders b into SQL and runs it through [DB.QueryOrExecute].
func (db *DB) Build(ctx context.Context, b sq.Sqlizer, mode Mode) (Result, error) {
	statement, args, err := b.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "DB.Build").Msg("failed to build sql")
		return Result{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.QueryOrExecute(ctx, statement, args, mode)
}

func (db *DB) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrStatementTimeout) {
		err = fmt.Errorf("%w: %w", ErrStatementTimeout, err)
	}

	if db.errorClassificator == nil {
		return err
	}

	return db.errorClassificator.Classify(err)
}

func execute(ctx context.Context, tx *sql.Tx, statement string, args []any) (Result, error) {
	res, err := tx.ExecContext(ctx, statement, args...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var result Result
	if result.RowsAffected, err = res.RowsAffected(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if isInsert(statement) {
		if result.LastInsertID, err = res.LastInsertId(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return result, nil
}

func fetch(ctx context.Context, tx *sql.Tx, statement string, args []any, mode Mode) (Result, error) {
	rows, err := tx.QueryContext(ctx, statement, args...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := Result{}
	if mode == FetchMany {
		result.Rows = make([]Row, 0)
	}

	for rows.Next() {
		row, err := scanRow(rows, columns)
		if err != nil {
			return Result{}, err
		}

		if mode == FetchOne {
			result.Row = row
			break
		}
		result.Rows = append(result.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func scanRow(rows *sql.Rows, columns []string) (Row, error) {
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	if err := rows.Scan(pointers...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	row := make(Row, len(columns))
	for i, column := range columns {
		// drivers may reuse byte buffers between rows
		if b, ok := values[i].([]byte); ok {
			values[i] = string(b)
		}
		row[column] = values[i]
	}

	return row, nil
}

func isInsert(statement string) bool {
	trimmed := strings.TrimSpace(statement)
	return len(trimmed) >= 6 && strings.EqualFold(trimmed[:6], "INSERT")
}
