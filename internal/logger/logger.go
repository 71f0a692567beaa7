// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// crud-api application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	file io.Closer
}

// levelAliases maps accepted level names onto zerolog levels.
var levelAliases = map[string]zerolog.Level{
	"TRACE":    zerolog.TraceLevel,
	"DEBUG":    zerolog.DebugLevel,
	"INFO":     zerolog.InfoLevel,
	"WARN":     zerolog.WarnLevel,
	"WARNING":  zerolog.WarnLevel,
	"ERROR":    zerolog.ErrorLevel,
	"CRITICAL": zerolog.FatalLevel,
	"FATAL":    zerolog.FatalLevel,
	"PANIC":    zerolog.PanicLevel,
	"DISABLED": zerolog.Disabled,
}

// ParseLevel converts a case-insensitive level name into a zerolog.Level.
func ParseLevel(name string) (zerolog.Level, error) {
	level, ok := levelAliases[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "server", "migrations") with all levels enabled.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	return &Logger{Logger: newZerolog(os.Stdout, role, zerolog.TraceLevel)}
}

// New constructs a *Logger from the log configuration: level filtering,
// JSON or console output on os.Stdout and an optional copy into cfg.File.
//
// The caller owns the returned logger and must call Close to release the
// log file.
func New(role string, cfg config.Log) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if cfg.Format == config.LogFormatConsole {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	var file *os.File
	if cfg.File != "" {
		if err = os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(out, file)
	}

	l := &Logger{Logger: newZerolog(out, role, level)}
	if file != nil {
		l.file = file
	}

	return l, nil
}

func newZerolog(w io.Writer, role string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Close releases the log file opened by New, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	return l.file.Close()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx a disabled logger is returned,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// WithFallback attaches l to ctx unless ctx already carries an enabled logger.
func WithFallback(ctx context.Context, l *Logger) context.Context {
	if l == nil || log.Ctx(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}

	return l.WithContext(ctx)
}
