// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var knownLogLevels = map[string]struct{}{
	"TRACE": {}, "DEBUG": {}, "INFO": {}, "WARN": {}, "WARNING": {},
	"ERROR": {}, "CRITICAL": {}, "FATAL": {}, "PANIC": {}, "DISABLED": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.APIToken == "" {
		return fmt.Errorf("%w: API_TOKEN is required", ErrInvalidAppConfigs)
	}

	if cfg.App.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is empty", ErrInvalidAppConfigs)
	}

	if cfg.IsProduction() && cfg.App.JWTSecret == DefaultJWTSecret {
		return fmt.Errorf("%w: default JWT_SECRET is not allowed in production", ErrInvalidAppConfigs)
	}

	if cfg.App.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: ACCESS_TOKEN_EXPIRE_MINUTES must be positive", ErrInvalidAppConfigs)
	}

	if _, err := cfg.Storage.DB.SQLitePath(); err != nil {
		return fmt.Errorf("%w: %q", err, cfg.Storage.DB.URL)
	}

	if cfg.Storage.DB.StatementTimeout <= 0 {
		return fmt.Errorf("%w: STATEMENT_TIMEOUT must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, ok := knownLogLevels[strings.ToUpper(cfg.Log.Level)]; !ok {
		return fmt.Errorf("%w: unknown LOG_LEVEL %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Log.Format != LogFormatJSON && cfg.Log.Format != LogFormatConsole {
		return fmt.Errorf("%w: unknown LOG_FORMAT %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}
