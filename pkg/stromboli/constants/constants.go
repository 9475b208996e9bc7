// Package constants defines shared constants and configuration values
// used throughout the stromboli context-menu library.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogPathEnvVar is the environment variable name for a custom log file path.
const LogPathEnvVar = "STROMBOLI_LOG_PATH"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// SelectionDividerName is the well-known name of the synthetic menu item
// inserted between selected and unselected items after reordering.
// A real item reusing this name is still distinguishable from the divider
// because dividers additionally carry the Divider flag.
const SelectionDividerName = "selection-divider"

// Default layout constants.
const (
	DefaultMenuMargin int32 = 4  // Gap between the target's bottom edge and the menu
	DefaultIconSize   int   = 24 // Edge length for rasterized menu item icons
)
