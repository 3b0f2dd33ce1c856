// Package object defines the entities drawn by the game: drifting words and
// HUD labels, plus the vocabulary pool words are spawned from.
package object

import "github.com/tomz197/typedrift/internal/draw"

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Speed  float64 // Horizontal drift this tick, in pixels
	Bounds Bounds  // Surface dimensions
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
	Input   string // Current player input, for match highlighting
}

// Bounds holds surface dimensions in logical pixels.
type Bounds struct {
	Width  float64
	Height float64
}

// BoundsOf returns the current dimensions of s.
func BoundsOf(s draw.Surface) Bounds {
	return Bounds{Width: s.Width(), Height: s.Height()}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error
}
