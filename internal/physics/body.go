// Package physics moves square boxes with explicit Euler steps and resolves
// overlaps between a moving box and static platforms.
//
// Coordinates follow the screen: x grows right, y grows down. A body's
// position is its bottom-left corner, so its top edge is y - size.
package physics

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/eggscroll/internal/core"
)

// ErrInvalidSize is returned when a body is built with a non-positive edge.
var ErrInvalidSize = errors.New("physics: box size must be positive")

// Params are the tunable constants of a moving body.
type Params struct {
	Gravity          float64 // Downward acceleration per tick
	TerminalVelocity float64 // |vy| above which gravity stops accumulating for the tick
	Elasticity       float64 // Extra fraction of normal velocity reflected on impact
	Friction         float64 // Fraction of tangential velocity removed on impact
}

// Body is an axis-aligned square box. Platforms are static bodies.
type Body struct {
	Pos core.Vec2 // Bottom-left corner
	Vel core.Vec2
	Acc core.Vec2

	Params
	Static bool

	size float64
}

// NewBody creates a moving body with its bottom-left corner at (x, y).
func NewBody(x, y, size float64, p Params) (*Body, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return &Body{
		Pos:    core.V(x, y),
		Params: p,
		size:   size,
	}, nil
}

// NewPlatform creates a static box with its bottom-left corner at (x, y).
func NewPlatform(x, y, size float64) (Body, error) {
	if size <= 0 {
		return Body{}, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return Body{Pos: core.V(x, y), Static: true, size: size}, nil
}

// Size returns the edge length. It never changes after construction.
func (b *Body) Size() float64 {
	return b.size
}

// Left returns the x of the left edge.
func (b *Body) Left() float64 {
	return b.Pos.X
}

// Right returns the x of the right edge.
func (b *Body) Right() float64 {
	return b.Pos.X + b.size
}

// Bottom returns the y of the bottom edge (numerically the larger y).
func (b *Body) Bottom() float64 {
	return b.Pos.Y
}

// Top returns the y of the top edge.
func (b *Body) Top() float64 {
	return b.Pos.Y - b.size
}

// Center returns the box center.
func (b *Body) Center() core.Vec2 {
	return core.V(b.Pos.X+b.size/2, b.Pos.Y-b.size/2)
}

// Overlaps reports whether the two boxes touch or intersect. Shared edges count.
func (b *Body) Overlaps(o *Body) bool {
	return b.Right() >= o.Left() && b.Left() <= o.Right() &&
		b.Top() <= o.Bottom() && b.Bottom() >= o.Top()
}

// ContainsPoint reports whether (px, py) lies strictly inside the box after
// shifting the box left by scroll. Points on the edges are outside.
func (b *Body) ContainsPoint(px, py, scroll float64) bool {
	left := b.Pos.X - scroll
	return left < px && px < left+b.size && b.Top() < py && py < b.Bottom()
}

// Reset moves the body to (x, y) and stops it.
func (b *Body) Reset(x, y float64) {
	b.Pos = core.V(x, y)
	b.Vel = core.Vec2{}
	b.Acc = core.Vec2{}
}

// Impulse adds dv to the velocity.
func (b *Body) Impulse(dv core.Vec2) {
	b.Vel = b.Vel.Add(dv)
}
