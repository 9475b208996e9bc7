// Package stromboli provides the behavioral controller for a context-menu
// UI widget: when the menu is shown, where it is positioned, where keyboard
// focus goes, and how menu items are ordered relative to a selection.
//
// The controller is deliberately rendering-agnostic. The host hands it
// handles to its target and menu elements at construction and wires the
// returned operations to its own events (right-click to ShowContextMenu,
// outside-click to HideContextMenu, Tab to FocusOnContextMenu); drawing the
// menu and dispatching input stay with the host. All operations run
// synchronously on the host's UI goroutine and take effect in the rendered
// output on its next frame.
package stromboli

import (
	"image"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before any other stromboli function to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the library logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the library logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

var (
	iconCacheOnce sync.Once
	iconCache     *internal.IconCache
)

// RenderMenuIcon rasterizes an item's SVG icon through the shared icon
// cache. Items without an icon yield nil with no error. Size below or equal
// to zero falls back to constants.DefaultIconSize.
func RenderMenuIcon(item MenuItem, size int) (*image.RGBA, error) {
	if item.IconFilename == "" {
		return nil, nil
	}
	if size <= 0 {
		size = constants.DefaultIconSize
	}

	iconCacheOnce.Do(func() {
		iconCache = internal.NewIconCache()
	})

	return iconCache.GetOrRender(item.IconFilename, size)
}
