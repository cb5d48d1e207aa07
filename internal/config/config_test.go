package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		check     func(t *testing.T, cfg Config)
		wantError string
	}{
		{
			name: "defaults: ok",
			env: map[string]string{
				"DATABASE_URL": "postgres://localhost/shop",
				"ADMIN_TOKEN":  "s3cret",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, ":8080", cfg.HTTPAddr)
				assert.Equal(t, currency.USD.String(), cfg.Currency.String())
				assert.Equal(t, 5*time.Second, cfg.SubmitTimeout)
				assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
				assert.False(t, cfg.StrictStatus)
				assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
				assert.Empty(t, cfg.CatalogFile)
				assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
			},
		},
		{
			name: "overrides: ok",
			env: map[string]string{
				"DATABASE_URL":              "postgres://localhost/shop",
				"ADMIN_TOKEN":               "s3cret",
				"CURRENCY":                  "EUR",
				"SUBMIT_TIMEOUT":            "2s",
				"STRICT_STATUS_TRANSITIONS": "true",
				"LOG_LEVEL":                 "debug",
				"CATALOG_FILE":              "/etc/storefront/catalog.json",
				"MAX_REQUEST_BODY_BYTES":    "4096",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/etc/storefront/catalog.json", cfg.CatalogFile)
				assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
				assert.Equal(t, "EUR", cfg.Currency.String())
				assert.Equal(t, 2*time.Second, cfg.SubmitTimeout)
				assert.True(t, cfg.StrictStatus)
				assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
			},
		},
		{
			name:      "missing required: error",
			env:       map[string]string{},
			wantError: "DATABASE_URL is required\nADMIN_TOKEN is required",
		},
		{
			name: "bad duration: error",
			env: map[string]string{
				"DATABASE_URL":   "postgres://localhost/shop",
				"ADMIN_TOKEN":    "s3cret",
				"SUBMIT_TIMEOUT": "soon",
			},
			wantError: "SUBMIT_TIMEOUT must be a positive duration",
		},
		{
			name: "bad body limit: error",
			env: map[string]string{
				"DATABASE_URL":           "postgres://localhost/shop",
				"ADMIN_TOKEN":            "s3cret",
				"MAX_REQUEST_BODY_BYTES": "-5",
			},
			wantError: "MAX_REQUEST_BODY_BYTES must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(func(key string) string { return tt.env[key] })
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
