package config

import (
	"fmt"
	"strings"

	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/rules"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if strings.TrimSpace(config.Source.Command) == "" {
		errs = append(errs, "source.command: command is required")
	}

	for tag := range config.Tags {
		if err := ValidateTag(tag); err != nil {
			errs = append(errs, "tags."+err.Error())
		}
	}

	if _, err := rules.Compile(config.Rules); err != nil {
		errs = append(errs, fmt.Sprintf("rules: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// ValidateTag checks if a configured tag name is usable. Tags are compared
// after trimming, so surrounding whitespace could never match.
func ValidateTag(tag string) error {
	if tag == "" {
		return &ValidationError{Field: "tag", Message: "tag name cannot be empty"}
	}
	if strings.TrimSpace(tag) != tag {
		return &ValidationError{Field: tag, Message: "tag name cannot start or end with whitespace"}
	}
	return nil
}
