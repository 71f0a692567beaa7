package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
)

const memoryPath = ":memory:"

// NewConnectSQLite opens the SQLite database located by cfg.URL, pings it
// and returns a [DB] that classifies SQLite constraint errors.
//
// The parent directory of a file database is created when missing.
// "sqlite:///:memory:" opens a private in-memory database restricted to a
// single connection so that every transaction sees the same schema.
// Foreign keys are enforced on every connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, err := cfg.SQLitePath()
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("url", cfg.URL).Msg("unsupported database url")
		return nil, err
	}

	inMemory := path == memoryPath
	if !inMemory {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if inMemory {
		// every new connection to ":memory:" would get its own empty database
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxIdleTime(0)
		conn.SetConnMaxLifetime(0)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
		statementTimeout:   cfg.StatementTimeout,
	}, nil
}

func sqliteDSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", "5000")

	if path == memoryPath {
		return "file::memory:?" + params.Encode()
	}

	return "file:" + path + "?" + params.Encode()
}
