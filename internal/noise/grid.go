// Package noise implements seeded 2D gradient noise for terrain generation.
//
// A Grid holds one unit gradient vector per lattice point. Sampling a point
// between lattice points blends the four corner gradients with a quintic
// fade, so the field is continuous (with continuous first derivative) across
// cell boundaries and exactly zero on the lattice itself.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/eggscroll/internal/core"
)

// Directions are the eight gradients a lattice point may take: the four axis
// directions and the four 45° diagonals.
var Directions = [8]core.Vec2{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
}

var (
	// ErrOutOfBounds is returned when a sample needs a lattice point outside the grid.
	ErrOutOfBounds = errors.New("noise: lattice coordinate out of bounds")

	// ErrInvalidSize is returned for grids or arrays with non-positive dimensions.
	ErrInvalidSize = errors.New("noise: invalid size")
)

// OutOfBoundsError reports the lattice point that fell outside the grid.
type OutOfBoundsError struct {
	X, Y       int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("noise: lattice (%d, %d) outside %dx%d grid", e.X, e.Y, e.Rows, e.Cols)
}

// Is makes errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Grid is an immutable rows x cols lattice of unit gradient vectors.
// Gradients are indexed [row][col], where the row is the y lattice coordinate.
type Grid struct {
	rows, cols int
	gradients  [][]core.Vec2
}

// GenerateGradientGrid fills a rows x cols grid by choosing one of the eight
// Directions per cell, uniformly, from rng.
func GenerateGradientGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: gradient grid %dx%d", ErrInvalidSize, rows, cols)
	}

	g := &Grid{
		rows:      rows,
		cols:      cols,
		gradients: make([][]core.Vec2, rows),
	}
	for r := range g.gradients {
		g.gradients[r] = make([]core.Vec2, cols)
		for c := range g.gradients[r] {
			g.gradients[r][c] = Directions[rng.Intn(len(Directions))]
		}
	}
	return g, nil
}

// Rows returns the number of lattice rows (y extent).
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of lattice columns (x extent).
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the gradient at lattice point (x, y).
func (g *Grid) At(x, y int) (core.Vec2, error) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return core.Vec2{}, &OutOfBoundsError{X: x, Y: y, Rows: g.rows, Cols: g.cols}
	}
	return g.gradients[y][x], nil
}

// Fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Sample evaluates the noise field at (x, y). The result is close to [-1, 1].
// Sample is pure: the grid is never modified.
func (g *Grid) Sample(x, y float64) (float64, error) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1, y1 := x0+1, y0+1

	g00, err := g.At(x0, y0)
	if err != nil {
		return 0, err
	}
	g10, err := g.At(x1, y0)
	if err != nil {
		return 0, err
	}
	g01, err := g.At(x0, y1)
	if err != nil {
		return 0, err
	}
	g11, err := g.At(x1, y1)
	if err != nil {
		return 0, err
	}

	// Offset of the point inside its cell, in [0, 1).
	xc := x - float64(x0)
	yc := y - float64(y0)

	// Corner-to-point vectors dotted with each corner's gradient.
	v00 := g00.Dot(core.V(xc, yc))
	v10 := g10.Dot(core.V(xc-1, yc))
	v01 := g01.Dot(core.V(xc, yc-1))
	v11 := g11.Dot(core.V(xc-1, yc-1))

	u := Fade(xc)
	w := Fade(yc)

	return v00*(1-u)*(1-w) + v10*u*(1-w) + v01*(1-u)*w + v11*u*w, nil
}
