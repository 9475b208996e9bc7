package stromboli

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid controller configurations.
var (
	// ErrMissingTarget indicates no target element handle was supplied.
	ErrMissingTarget = errors.New("target element is required")

	// ErrMissingMenu indicates no menu element handle was supplied.
	ErrMissingMenu = errors.New("menu element is required")

	// ErrMissingItems indicates reorder-by-selection was requested without
	// a menu item list to reorder.
	ErrMissingItems = errors.New("menu items are required when reorder by selection is enabled")
)

// ConfigurationError represents an invalid controller configuration detected
// at construction time. Construction either fully succeeds or fails with
// this error and no controller — there is no partially constructed state to
// recover.
//
// Runtime conditions (an element handle resolving to nothing because the UI
// has not mounted yet) are never reported through this type; operations
// degrade to no-ops instead.
type ConfigurationError struct {
	Field string // Setting that failed validation (e.g., "TargetElement")
	Err   error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stromboli: invalid configuration: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("stromboli: invalid configuration: %s", e.Field)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}
