// Package internal contains supporting infrastructure for the stromboli
// context-menu library: logging, geometry helpers, and icon rasterization.
// Types and functions in this package are not part of the public API.
package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// ClampPoint constrains a point to lie within the viewport rectangle.
// Points already inside are returned unchanged.
func ClampPoint(x, y int32, viewport sdl.Rect) (int32, int32) {
	if x < viewport.X {
		x = viewport.X
	}
	if max := viewport.X + viewport.W; x > max {
		x = max
	}
	if y < viewport.Y {
		y = viewport.Y
	}
	if max := viewport.Y + viewport.H; y > max {
		y = max
	}
	return x, y
}
