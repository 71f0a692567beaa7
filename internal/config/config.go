// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultEnvironment              = "development"
	DefaultDatabaseURL              = "sqlite:///app/data/app.db"
	DefaultJWTSecret                = "dev_jwt_secret"
	DefaultAccessTokenExpireMinutes = 30
	DefaultLogLevel                 = "INFO"
	DefaultLogFormat                = LogFormatJSON
	DefaultHTTPAddress              = ":8080"
	DefaultRequestTimeout           = 30 * time.Second
	DefaultStatementTimeout         = 5 * time.Second
	DefaultMaxBodyBytes             = 1 << 20

	// EnvironmentProduction enables the stricter validation rules.
	EnvironmentProduction = "production"

	// SQLiteURLPrefix is the only supported DATABASE_URL scheme.
	SQLiteURLPrefix = "sqlite:///"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, an optional
// JSON file, environment variables and command-line flags.
//
// Environment keys are flat (no prefixes) so that the documented variables
// API_TOKEN, DATABASE_URL, JWT_SECRET, etc. map directly onto fields.
type StructuredConfig struct {
	// App holds application-level settings: environment name, the static API
	// bearer token and access token parameters.
	App App

	// Storage holds configuration of the relational store.
	Storage Storage

	// Server holds the HTTP listener settings.
	Server Server

	// Log holds logger settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment name (e.g. "development", "production").
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// APIToken is the single shared bearer token required on every request.
	// Env: API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// JWTSecret signs and verifies access tokens (HS256).
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// AccessTokenExpireMinutes is the default access token lifetime.
	// Env: ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
}

// AccessTokenTTL returns AccessTokenExpireMinutes as a duration.
func (a App) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB
}

// DB holds connection settings for the relational store.
type DB struct {
	// URL locates the database. Only "sqlite:///<path>" is supported;
	// "sqlite:///:memory:" opens a private in-memory database.
	// Env: DATABASE_URL
	URL string `env:"DATABASE_URL"`

	// StatementTimeout bounds every single query/execute call.
	// Env: STATEMENT_TIMEOUT
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT"`
}

// SQLitePath extracts the filesystem path from URL.
// Any scheme other than "sqlite:///" yields [ErrUnsupportedDatabaseURL].
func (db DB) SQLitePath() (string, error) {
	path, ok := strings.CutPrefix(db.URL, SQLiteURLPrefix)
	if !ok || path == "" {
		return "", ErrUnsupportedDatabaseURL
	}

	return path, nil
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes limits the size of request bodies read by the transport.
	// Env: MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Log holds logger settings.
type Log struct {
	// Level is a level name: TRACE, DEBUG, INFO, WARNING/WARN, ERROR,
	// CRITICAL/FATAL (case-insensitive).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`

	// Format is "json" or "console".
	// Env: LOG_FORMAT
	Format string `env:"LOG_FORMAT"`

	// File, when set, receives a copy of every log entry.
	// Env: LOG_FILE
	File string `env:"LOG_FILE"`
}

// Get returns the value of a flat configuration key (the environment variable
// name) or def when the key is unknown or its value is empty.
func (cfg *StructuredConfig) Get(key string, def string) string {
	var value string

	switch key {
	case "ENVIRONMENT":
		value = cfg.App.Environment
	case "API_TOKEN":
		value = cfg.App.APIToken
	case "JWT_SECRET":
		value = cfg.App.JWTSecret
	case "ACCESS_TOKEN_EXPIRE_MINUTES":
		if cfg.App.AccessTokenExpireMinutes != 0 {
			value = strconv.Itoa(cfg.App.AccessTokenExpireMinutes)
		}
	case "DATABASE_URL":
		value = cfg.Storage.DB.URL
	case "STATEMENT_TIMEOUT":
		if cfg.Storage.DB.StatementTimeout != 0 {
			value = cfg.Storage.DB.StatementTimeout.String()
		}
	case "SERVER_ADDRESS":
		value = cfg.Server.HTTPAddress
	case "REQUEST_TIMEOUT":
		if cfg.Server.RequestTimeout != 0 {
			value = cfg.Server.RequestTimeout.String()
		}
	case "MAX_BODY_BYTES":
		if cfg.Server.MaxBodyBytes != 0 {
			value = strconv.FormatInt(cfg.Server.MaxBodyBytes, 10)
		}
	case "LOG_LEVEL":
		value = cfg.Log.Level
	case "LOG_FORMAT":
		value = cfg.Log.Format
	case "LOG_FILE":
		value = cfg.Log.File
	case "CONFIG":
		value = cfg.JSONFilePath
	}

	if value == "" {
		return def
	}

	return value
}

// IsProduction reports whether the configured environment is production.
func (cfg *StructuredConfig) IsProduction() bool {
	return strings.EqualFold(cfg.App.Environment, EnvironmentProduction)
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:              DefaultEnvironment,
			JWTSecret:                DefaultJWTSecret,
			AccessTokenExpireMinutes: DefaultAccessTokenExpireMinutes,
		},
		Storage: Storage{
			DB: DB{
				URL:              DefaultDatabaseURL,
				StatementTimeout: DefaultStatementTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
//
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
