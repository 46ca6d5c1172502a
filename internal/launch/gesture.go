// Package launch turns a press-drag-release pointer gesture on the player
// into a velocity impulse.
package launch

import (
	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/physics"
)

// Default impulse divisors: the horizontal pull is weaker than the vertical one.
const (
	DefaultScaleX = 50.0
	DefaultScaleY = 30.0
)

// Phase is the gesture state.
type Phase int

const (
	Idle Phase = iota
	Pressing
	Dragging
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Pressing:
		return "Pressing"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Gesture tracks one launch. Coordinates are viewport coordinates (world
// units with the scroll offset already removed by the pointer source).
type Gesture struct {
	phase  Phase
	press  core.Vec2
	drag   core.Vec2
	scaleX float64
	scaleY float64
}

// NewGesture creates an idle gesture with the given impulse divisors.
// Non-positive divisors select the defaults.
func NewGesture(scaleX, scaleY float64) *Gesture {
	if scaleX <= 0 {
		scaleX = DefaultScaleX
	}
	if scaleY <= 0 {
		scaleY = DefaultScaleY
	}
	return &Gesture{scaleX: scaleX, scaleY: scaleY}
}

// Phase returns the current phase.
func (g *Gesture) Phase() Phase {
	return g.phase
}

// Press starts a gesture if (x, y) is inside the player box shifted by
// scroll; outside clears any stale gesture. A press while the gesture is
// still only pressed is ignored.
func (g *Gesture) Press(x, y, scroll float64, player *physics.Body) {
	if g.phase == Pressing {
		return
	}
	if !player.ContainsPoint(x, y, scroll) {
		g.Cancel()
		return
	}
	g.phase = Pressing
	g.press = core.V(x, y)
	g.drag = core.Vec2{}
}

// Drag moves the second endpoint. Without an active gesture it does nothing.
func (g *Gesture) Drag(x, y float64) {
	if g.phase == Idle {
		return
	}
	g.phase = Dragging
	g.drag = core.V(x, y)
}

// Release sets the final endpoint, applies the impulse to player and clears
// the gesture. It returns the applied velocity change; without an active
// gesture it returns false and does nothing.
func (g *Gesture) Release(x, y float64, player *physics.Body) (core.Vec2, bool) {
	if g.phase == Idle {
		return core.Vec2{}, false
	}
	g.drag = core.V(x, y)

	dv := core.V(
		(g.press.X-g.drag.X)/g.scaleX,
		(g.press.Y-g.drag.Y)/g.scaleY,
	)
	player.Impulse(dv)
	g.Cancel()
	return dv, true
}

// Cancel drops the gesture without applying it.
func (g *Gesture) Cancel() {
	g.phase = Idle
	g.press = core.Vec2{}
	g.drag = core.Vec2{}
}

// Segment returns the press and drag endpoints once both are known.
func (g *Gesture) Segment() (from, to core.Vec2, ok bool) {
	if g.phase != Dragging {
		return core.Vec2{}, core.Vec2{}, false
	}
	return g.press, g.drag, true
}
