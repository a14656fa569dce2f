package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"spese-screen/internal/log"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	// Logging. The terminal belongs to the UI, so records go to a file.
	// LOG_FILE=none leaves LogFile empty and discards them.
	LogLevel string
	LogFile  string

	// Presentation
	Theme     string
	AltScreen bool
}

func Load() *Config {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", "./data/spese.log"),
		Theme:     strings.ToLower(getEnv("THEME", ThemeLight)),
		AltScreen: getEnvBool("ALT_SCREEN", true),
	}
	if cfg.LogFile == "none" {
		cfg.LogFile = ""
	}
	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	validThemes := []string{ThemeLight, ThemeDark}
	if !slices.Contains(validThemes, c.Theme) {
		errors = append(errors, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, validThemes))
	}

	// Check if the log directory exists or can be created
	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				errors = append(errors, fmt.Sprintf("cannot create log directory '%s': %v", dir, err))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// DarkMode reports whether the UI should start with the dark palette.
func (c *Config) DarkMode() bool {
	return c.Theme == ThemeDark
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
