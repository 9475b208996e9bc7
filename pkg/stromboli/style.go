package stromboli

import "github.com/veandco/go-sdl2/sdl"

// FixedStyle is a menu position expressed independent of normal layout
// flow, anchored to the target element's current geometry. The zero value
// is the neutral style produced while the target is not mounted.
type FixedStyle struct {
	Top  int32
	Left int32
}

// IsZero reports whether the style is the neutral (unanchored) style.
func (s FixedStyle) IsZero() bool {
	return s == FixedStyle{}
}

// Apply places a menu of the given size at the style's position and returns
// the resulting rectangle for the host's renderer.
func (s FixedStyle) Apply(w, h int32) sdl.Rect {
	return sdl.Rect{X: s.Left, Y: s.Top, W: w, H: h}
}
