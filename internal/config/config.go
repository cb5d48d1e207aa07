package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	AdminToken      string
	Currency        currency.Unit
	SubmitTimeout   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	StrictStatus    bool
	LogLevel        zapcore.Level
	// CatalogFile, when set, is a JSON product list imported at startup.
	CatalogFile  string
	MaxBodyBytes int64
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	var errs []error

	env := func(key, defaultValue string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	duration := func(key, defaultValue string) time.Duration {
		d, err := time.ParseDuration(env(key, defaultValue))
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive duration", key))
		}
		return d
	}

	required := func(key string) string {
		value := getenv(key)
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
		return value
	}

	cfg := Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     required("DATABASE_URL"),
		AdminToken:      required("ADMIN_TOKEN"),
		SubmitTimeout:   duration("SUBMIT_TIMEOUT", "5s"),
		RequestTimeout:  duration("REQUEST_TIMEOUT", "15s"),
		ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", "10s"),
		SessionTTL:      duration("SESSION_TTL", "24h"),
		CatalogFile:     getenv("CATALOG_FILE"),
	}

	maxBody, err := strconv.ParseInt(env("MAX_REQUEST_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BODY_BYTES must be a positive integer"))
	}
	cfg.MaxBodyBytes = maxBody

	unit, err := currency.ParseISO(env("CURRENCY", "USD"))
	if err != nil {
		errs = append(errs, fmt.Errorf("CURRENCY is not a valid ISO code: %w", err))
	}
	cfg.Currency = unit

	strict, err := strconv.ParseBool(env("STRICT_STATUS_TRANSITIONS", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("STRICT_STATUS_TRANSITIONS must be a boolean"))
	}
	cfg.StrictStatus = strict

	level, err := zapcore.ParseLevel(env("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
