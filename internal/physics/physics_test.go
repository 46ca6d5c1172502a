package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/eggscroll/internal/core"
)

var playerParams = Params{
	Gravity:          0.1,
	TerminalVelocity: 20,
	Elasticity:       0.2,
	Friction:         0.1,
}

func mustBody(t *testing.T, x, y, size float64, p Params) *Body {
	t.Helper()
	b, err := NewBody(x, y, size, p)
	if err != nil {
		t.Fatalf("NewBody() failed: %v", err)
	}
	return b
}

func mustPlatform(t *testing.T, x, y, size float64) Body {
	t.Helper()
	p, err := NewPlatform(x, y, size)
	if err != nil {
		t.Fatalf("NewPlatform() failed: %v", err)
	}
	return p
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewBodyRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewBody(0, 0, 0, playerParams); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewBody(size 0): expected ErrInvalidSize, got %v", err)
	}
	if _, err := NewPlatform(0, 0, -3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewPlatform(size -3): expected ErrInvalidSize, got %v", err)
	}
}

func TestBoxEdges(t *testing.T) {
	b := mustBody(t, 10, 100, 50, playerParams)

	if b.Left() != 10 || b.Right() != 60 {
		t.Errorf("x edges = [%v, %v], expected [10, 60]", b.Left(), b.Right())
	}
	if b.Top() != 50 || b.Bottom() != 100 {
		t.Errorf("y edges = [%v, %v], expected [50, 100]", b.Top(), b.Bottom())
	}
	if c := b.Center(); c != core.V(35, 75) {
		t.Errorf("Center() = %v, expected (35, 75)", c)
	}
}

func TestIntegrateOneTick(t *testing.T) {
	b := mustBody(t, 0, 0, 50, playerParams)
	b.Step(nil)

	if !approx(b.Pos.X, 0) || !approx(b.Pos.Y, 0.1) {
		t.Errorf("position = %v, expected (0, 0.1)", b.Pos)
	}
	if !approx(b.Vel.X, 0) || !approx(b.Vel.Y, 0.1) {
		t.Errorf("velocity = %v, expected (0, 0.1)", b.Vel)
	}
}

func TestIntegrateHorizontalAcceleration(t *testing.T) {
	b := mustBody(t, 0, 0, 50, playerParams)
	b.Acc.X = 0.5
	b.Integrate()
	b.Integrate()

	// vx: 0.5 then 1.0; x: 0.5 then 1.5
	if !approx(b.Vel.X, 1.0) || !approx(b.Pos.X, 1.5) {
		t.Errorf("after two ticks vel.x=%v pos.x=%v, expected 1.0 and 1.5", b.Vel.X, b.Pos.X)
	}
}

func TestTerminalVelocityDoesNotClamp(t *testing.T) {
	b := mustBody(t, 0, 0, 50, playerParams)
	b.Vel.Y = 25

	b.Integrate()

	// Gravity was already added this tick; the check only zeroes ay.
	if !approx(b.Vel.Y, 25.1) {
		t.Errorf("vy = %v, expected 25.1 (no clamp)", b.Vel.Y)
	}
	if b.Acc.Y != 0 {
		t.Errorf("ay = %v, expected 0 after exceeding terminal velocity", b.Acc.Y)
	}

	b.Vel.Y = 1
	b.Integrate()
	if b.Acc.Y != b.Gravity {
		t.Errorf("ay = %v, expected gravity to be restored next tick", b.Acc.Y)
	}
}

func TestStaticBodyDoesNotMove(t *testing.T) {
	p := mustPlatform(t, 5, 5, 10)
	p.Gravity = 1
	p.Integrate()
	if p.Pos != core.V(5, 5) || p.Vel != (core.Vec2{}) {
		t.Errorf("static body moved: pos=%v vel=%v", p.Pos, p.Vel)
	}
}

func TestOverlaps(t *testing.T) {
	player := mustBody(t, 0, 100, 50, playerParams)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"intersecting", 25, 120, true},
		{"touching right edge", 50, 100, true},
		{"touching top edge", 0, 50, true},
		{"gap to the right", 51, 100, false},
		{"gap above", 0, 49, false},
		{"gap below", 0, 151, false},
		{"enclosing", -50, 150, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size := 50.0
			if tc.name == "enclosing" {
				size = 200
			}
			o := mustPlatform(t, tc.x, tc.y, size)
			if got := player.Overlaps(&o); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := o.Overlaps(player); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResolveLandingFromAbove(t *testing.T) {
	// Player bottom at 410 sinks 10 into a platform whose top is 400.
	player := mustBody(t, 100, 410, 50, playerParams)
	player.Vel = core.V(2, 5)
	platform := mustPlatform(t, 75, 500, 100)

	if !player.Resolve(&platform) {
		t.Fatal("expected a collision")
	}

	// Centers: player (125, 385), platform (125, 450): dy = -65, sep = 75-65 = 10 upward.
	if !approx(player.Pos.Y, 400) || !approx(player.Pos.X, 100) {
		t.Errorf("position = %v, expected (100, 400)", player.Pos)
	}

	// Normal ≈ (0, -1): normal velocity 5 is reflected with 20% extra,
	// tangential 2 is damped by 10%.
	n := -10 / (10 + Epsilon)
	speed := 5 * n
	colY := n * speed
	wantVX := 2 - 2*0.1
	wantVY := 5 - colY*1.2 - (5-colY)*0.1
	if !approx(player.Vel.X, wantVX) || !approx(player.Vel.Y, wantVY) {
		t.Errorf("velocity = %v, expected (%v, %v)", player.Vel, wantVX, wantVY)
	}
	if player.Vel.Y >= 0 {
		t.Errorf("expected upward rebound, got vy=%v", player.Vel.Y)
	}
}

func TestResolveSideHitUsesXAxis(t *testing.T) {
	// Player overlaps the left side of the platform by 5.
	player := mustBody(t, 30, 480, 50, playerParams)
	player.Vel = core.V(4, 0)
	platform := mustPlatform(t, 75, 500, 100)

	player.Resolve(&platform)

	// Centers: (55, 455) vs (125, 450): |dx| = 70 > |dy| = 5, sep = 75-70 = 5 leftward.
	if !approx(player.Pos.X, 25) || !approx(player.Pos.Y, 480) {
		t.Errorf("position = %v, expected (25, 480)", player.Pos)
	}
	if player.Vel.X >= 0 {
		t.Errorf("expected bounce to the left, got vx=%v", player.Vel.X)
	}
}

func TestResolveTieGoesToY(t *testing.T) {
	player := mustBody(t, 0, 10, 10, playerParams)
	platform := mustPlatform(t, 5, 15, 10)

	player.Resolve(&platform)

	// |dx| == |dy| == 5: separation is vertical (upward by 5).
	if !approx(player.Pos.X, 0) || !approx(player.Pos.Y, 5) {
		t.Errorf("position = %v, expected (0, 5)", player.Pos)
	}
}

func TestResolveDegenerateContact(t *testing.T) {
	// Exactly touching: zero separation must not divide by zero.
	player := mustBody(t, 0, 100, 50, playerParams)
	player.Vel = core.V(3, 0)
	platform := mustPlatform(t, 0, 150, 50)

	if !player.Resolve(&platform) {
		t.Fatal("touching boxes count as overlapping")
	}
	if math.IsNaN(player.Vel.X) || math.IsNaN(player.Vel.Y) {
		t.Fatalf("velocity became NaN: %v", player.Vel)
	}
	if player.Pos != core.V(0, 100) {
		t.Errorf("zero separation should not move the body, got %v", player.Pos)
	}
	if !approx(player.Vel.X, 2.7) {
		t.Errorf("contact should only apply friction, vx=%v expected 2.7", player.Vel.X)
	}
}

func TestResolveNoOpWhenSeparated(t *testing.T) {
	player := mustBody(t, 100, 410, 50, playerParams)
	player.Vel = core.V(1, 3)
	platform := mustPlatform(t, 75, 500, 100)

	player.Resolve(&platform)
	// Lift clear of the platform and resolve again.
	player.Pos.Y -= 1
	pos, vel := player.Pos, player.Vel

	if player.Resolve(&platform) {
		t.Error("separated boxes should not collide")
	}
	if player.Pos != pos || player.Vel != vel {
		t.Errorf("separated resolve changed state: pos %v -> %v, vel %v -> %v", pos, player.Pos, vel, player.Vel)
	}
}

func TestResolveAllSequential(t *testing.T) {
	// Two stacked platforms: the second sees the result of the first.
	player := mustBody(t, 100, 405, 50, playerParams)
	player.Vel = core.V(0, 4)
	platforms := []Body{
		mustPlatform(t, 75, 500, 100),
		mustPlatform(t, 300, 500, 100),
	}

	hits := player.ResolveAll(platforms)
	if hits != 1 {
		t.Errorf("ResolveAll() hits = %d, expected 1", hits)
	}

	if player.ResolveAll(nil) != 0 {
		t.Error("no platforms should be a no-op")
	}
}

func TestContainsPoint(t *testing.T) {
	b := mustBody(t, 100, 200, 50, playerParams)

	tests := []struct {
		name     string
		x, y     float64
		scroll   float64
		expected bool
	}{
		{"center", 125, 175, 0, true},
		{"left edge is outside", 100, 175, 0, false},
		{"bottom edge is outside", 125, 200, 0, false},
		{"above", 125, 140, 0, false},
		{"scrolled into view", 25, 175, 100, true},
		{"scrolled away", 125, 175, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsPoint(tc.x, tc.y, tc.scroll); got != tc.expected {
				t.Errorf("ContainsPoint(%v, %v, %v) = %v, expected %v", tc.x, tc.y, tc.scroll, got, tc.expected)
			}
		})
	}
}

func TestPlatformSetEviction(t *testing.T) {
	s := NewPlatformSet(10)

	for i := 0; i < 10; i++ {
		if s.Append(mustPlatform(t, float64(i), 0, 1)) {
			t.Fatalf("append %d should not evict", i)
		}
	}
	if !s.Append(mustPlatform(t, 10, 0, 1)) {
		t.Fatal("11th append should evict the oldest")
	}

	if s.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", s.Len())
	}
	for i, p := range s.All() {
		if p.Pos.X != float64(i+1) {
			t.Errorf("platform %d has x=%v, expected %d", i, p.Pos.X, i+1)
		}
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear() left %d platforms", s.Len())
	}
}

func TestPlatformSetDefaultCapacity(t *testing.T) {
	if NewPlatformSet(0).Cap() != DefaultCapacity {
		t.Errorf("expected default capacity %d", DefaultCapacity)
	}
}
