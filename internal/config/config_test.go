package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Get(t *testing.T) {
	cfg := validLayer()
	cfg.Log.File = ""

	assert.Equal(t, "token", cfg.Get("API_TOKEN", "x"))
	assert.Equal(t, DefaultDatabaseURL, cfg.Get("DATABASE_URL", ""))
	assert.Equal(t, "30", cfg.Get("ACCESS_TOKEN_EXPIRE_MINUTES", ""))
	assert.Equal(t, "30s", cfg.Get("REQUEST_TIMEOUT", ""))
	assert.Equal(t, "fallback", cfg.Get("LOG_FILE", "fallback"))
	assert.Equal(t, "fallback", cfg.Get("NO_SUCH_KEY", "fallback"))
}

func TestDB_SQLitePath(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "absolute", url: "sqlite:///app/data/app.db", want: "app/data/app.db"},
		{name: "double slash absolute", url: "sqlite:////var/app.db", want: "/var/app.db"},
		{name: "memory", url: "sqlite:///:memory:", want: ":memory:"},
		{name: "postgres", url: "postgres://localhost/db", wantErr: true},
		{name: "empty path", url: "sqlite:///", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DB{URL: tt.url}.SQLitePath()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDatabaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing api token", mutate: func(c *StructuredConfig) { c.App.APIToken = "" }, wantErr: ErrInvalidAppConfigs},
		{
			name: "default secret in production",
			mutate: func(c *StructuredConfig) {
				c.App.Environment = "Production"
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "custom secret in production",
			mutate: func(c *StructuredConfig) {
				c.App.Environment = EnvironmentProduction
				c.App.JWTSecret = "strong"
			},
		},
		{name: "zero ttl", mutate: func(c *StructuredConfig) { c.App.AccessTokenExpireMinutes = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "postgres url", mutate: func(c *StructuredConfig) { c.Storage.DB.URL = "postgres://x" }, wantErr: ErrUnsupportedDatabaseURL},
		{name: "zero statement timeout", mutate: func(c *StructuredConfig) { c.Storage.DB.StatementTimeout = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "warning level", mutate: func(c *StructuredConfig) { c.Log.Level = "warning" }},
		{name: "critical level", mutate: func(c *StructuredConfig) { c.Log.Level = "CRITICAL" }},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Log.Level = "LOUD" }, wantErr: ErrInvalidLogConfigs},
		{name: "unknown format", mutate: func(c *StructuredConfig) { c.Log.Format = "xml" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validLayer()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
