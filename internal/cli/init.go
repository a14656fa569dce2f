// Package cli provides common CLI initialization utilities.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"spese-screen/internal/config"
	"spese-screen/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// BootstrapLogger logs to stderr until the configured logger takes over.
func BootstrapLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(log.ComponentConfig).Error("Configuration validation failed",
			log.FieldErrorType, log.ErrorTypeConfiguration,
			log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger opens the configured log file and installs the logger as the
// slog default. The returned closer releases the file.
func SetupLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogFile == "" {
		logger := log.Discard()
		log.SetDefault(logger)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}

	logger := log.New(log.Config{
		Level:     level,
		Component: log.ComponentApp,
		Output:    f,
	})
	log.SetDefault(logger)
	return logger, f, nil
}

// nopCloser stands in for the log file when logging is disabled.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// MustSetupLogger is SetupLogger that exits the process on failure.
func MustSetupLogger(bootstrap *log.Logger, cfg *config.Config) (*log.Logger, io.Closer) {
	logger, closer, err := SetupLogger(cfg)
	if err != nil {
		bootstrap.Error("Failed to initialize logger", log.FieldError, err, "path", cfg.LogFile)
		os.Exit(1)
	}
	return logger, closer
}
