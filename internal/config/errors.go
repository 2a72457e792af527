package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigInvalid indicates a value that cannot be parsed.
	ConfigInvalid ConfigErrorType = iota
	// ConfigValidationFailed indicates a value outside its allowed set.
	ConfigValidationFailed
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Field is the setting that caused the error.
	Field string
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error [field: %s]: %s", e.Field, e.Message)
	}

	return "configuration error: " + e.Message
}

// NewConfigErrorWithField creates a new ConfigError with a field name.
func NewConfigErrorWithField(typ ConfigErrorType, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Field:   field,
		Message: message,
	}
}
