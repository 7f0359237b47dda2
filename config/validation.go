package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Development and test run fine on defaults; production
// refuses to start without explicit database credentials.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "SERVER_PORT", Message: "must be a number"}
	}
	if cfg.DatabaseURL == "" {
		if _, err := strconv.Atoi(cfg.DBPort); err != nil {
			return ValidationError{Field: "DB_PORT", Message: "must be a number"}
		}
	}

	if IsProduction() {
		if cfg.DatabaseURL == "" && cfg.DBPassword == "" {
			return ValidationError{Field: "DB_PASSWORD", Message: "is required in production"}
		}
	}

	return nil
}
