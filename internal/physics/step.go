package physics

import "math"

// Epsilon keeps the collision normal finite when the separation is zero.
const Epsilon = 0.001

// Integrate advances a moving body by one tick.
//
// Gravity is applied first; the terminal velocity check only zeroes ay after
// the velocity update, so vy itself is never clamped.
func (b *Body) Integrate() {
	if b.Static {
		return
	}

	b.Acc.Y = b.Gravity

	b.Vel = b.Vel.Add(b.Acc)

	if math.Abs(b.Vel.Y) > b.TerminalVelocity {
		b.Acc.Y = 0
	}

	b.Pos = b.Pos.Add(b.Vel)
}

// Step integrates the body and then resolves it against the platforms.
func (b *Body) Step(platforms []Body) {
	b.Integrate()
	b.ResolveAll(platforms)
}

// ResolveAll resolves the body against each platform in order. Each
// resolution sees the position and velocity left by the previous one.
// It returns the number of platforms that were touching.
func (b *Body) ResolveAll(platforms []Body) int {
	hits := 0
	for i := range platforms {
		if b.Resolve(&platforms[i]) {
			hits++
		}
	}
	return hits
}

// Resolve pushes the body out of o along the axis with the larger center
// distance (ties go to y) and reflects and damps its velocity. It returns
// false and leaves the body untouched when the boxes do not overlap.
func (b *Body) Resolve(o *Body) bool {
	if !b.Overlaps(o) {
		return false
	}

	d := b.Center().Sub(o.Center())
	reach := b.size/2 + o.size/2

	var sepX, sepY float64
	if math.Abs(d.X) > math.Abs(d.Y) {
		sepX = math.Copysign(reach-math.Abs(d.X), d.X)
	} else {
		sepY = math.Copysign(reach-math.Abs(d.Y), d.Y)
	}

	dist := math.Hypot(sepX, sepY) + Epsilon
	nx, ny := sepX/dist, sepY/dist

	speed := b.Vel.X*nx + b.Vel.Y*ny
	colX, colY := nx*speed, ny*speed
	tanX, tanY := b.Vel.X-colX, b.Vel.Y-colY

	b.Pos.X += sepX
	b.Pos.Y += sepY

	b.Vel.X = b.Vel.X - colX*(1+b.Elasticity) - tanX*b.Friction
	b.Vel.Y = b.Vel.Y - colY*(1+b.Elasticity) - tanY*b.Friction
	return true
}
