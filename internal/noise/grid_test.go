package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestGrid(t *testing.T, rows, cols int, seed int64) *Grid {
	t.Helper()
	g, err := GenerateGradientGrid(rows, cols, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("GenerateGradientGrid() failed: %v", err)
	}
	return g
}

func TestGradientsAreUnitLength(t *testing.T) {
	g := newTestGrid(t, 11, 11, 7)

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			v, err := g.At(x, y)
			if err != nil {
				t.Fatalf("At(%d, %d) failed: %v", x, y, err)
			}
			if math.Abs(v.Len()-1) > 1e-9 {
				t.Errorf("gradient at (%d, %d) has length %v", x, y, v.Len())
			}
		}
	}
}

func TestGradientsUseEightDirections(t *testing.T) {
	g := newTestGrid(t, 40, 40, 99)
	seen := make(map[int]bool)

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			v, _ := g.At(x, y)
			found := false
			for i, d := range Directions {
				if v == d {
					seen[i] = true
					found = true
				}
			}
			if !found {
				t.Fatalf("gradient %v at (%d, %d) is not one of the eight directions", v, x, y)
			}
		}
	}
	if len(seen) != len(Directions) {
		t.Errorf("expected all %d directions in a 40x40 grid, saw %d", len(Directions), len(seen))
	}
}

func TestGridDeterministicForSeed(t *testing.T) {
	a := newTestGrid(t, 8, 8, 12345)
	b := newTestGrid(t, 8, 8, 12345)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			va, _ := a.At(x, y)
			vb, _ := b.At(x, y)
			if va != vb {
				t.Fatalf("same seed produced different gradients at (%d, %d): %v vs %v", x, y, va, vb)
			}
		}
	}
}

func TestGenerateGradientGridInvalidSize(t *testing.T) {
	_, err := GenerateGradientGrid(0, 5, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSampleZeroOnLattice(t *testing.T) {
	g := newTestGrid(t, 11, 11, 3)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v, err := g.Sample(float64(x), float64(y))
			if err != nil {
				t.Fatalf("Sample(%d, %d) failed: %v", x, y, err)
			}
			if v != 0 {
				t.Errorf("Sample(%d, %d) = %v, expected exactly 0", x, y, v)
			}
		}
	}
}

func TestSampleIsPure(t *testing.T) {
	g := newTestGrid(t, 11, 11, 5)

	points := [][2]float64{{0.5, 0.5}, {3.25, 7.75}, {9.9, 0.1}, {4.01, 4.99}}
	for _, p := range points {
		first, err := g.Sample(p[0], p[1])
		if err != nil {
			t.Fatalf("Sample(%v) failed: %v", p, err)
		}
		second, _ := g.Sample(p[0], p[1])
		if first != second {
			t.Errorf("Sample(%v) not repeatable: %v then %v", p, first, second)
		}
	}
}

func TestSampleRange(t *testing.T) {
	g := newTestGrid(t, 11, 11, 42)

	for x := 0.05; x < 10; x += 0.1 {
		for y := 0.05; y < 10; y += 0.1 {
			v, err := g.Sample(x, y)
			if err != nil {
				t.Fatalf("Sample(%v, %v) failed: %v", x, y, err)
			}
			if v < -1.01 || v > 1.01 {
				t.Errorf("Sample(%v, %v) = %v outside [-1, 1]", x, y, v)
			}
		}
	}
}

func TestSampleContinuousAcrossCells(t *testing.T) {
	g := newTestGrid(t, 11, 11, 8)
	const h = 1e-7

	for _, y := range []float64{0.3, 2.6, 5.5} {
		for x := 1; x < 9; x++ {
			left, _ := g.Sample(float64(x)-h, y)
			right, _ := g.Sample(float64(x)+h, y)
			if math.Abs(left-right) > 1e-5 {
				t.Errorf("discontinuity at x=%d, y=%v: %v vs %v", x, y, left, right)
			}

			// One-sided slopes must agree across the shared edge.
			at, _ := g.Sample(float64(x), y)
			slopeL := (at - left) / h
			slopeR := (right - at) / h
			if math.Abs(slopeL-slopeR) > 1e-3 {
				t.Errorf("derivative jump at x=%d, y=%v: %v vs %v", x, y, slopeL, slopeR)
			}
		}
	}
}

func TestSampleOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 4, 4, 1)

	tests := []struct {
		name string
		x, y float64
	}{
		{"negative x", -0.5, 1},
		{"negative y", 1, -0.5},
		{"right edge needs x+1", 3, 1},
		{"bottom edge needs y+1", 1, 3.5},
		{"far away", 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Sample(tc.x, tc.y)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("expected ErrOutOfBounds, got %v", err)
			}
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %T", err)
			}
			if oob.Rows != 4 || oob.Cols != 4 {
				t.Errorf("error reports grid %dx%d, expected 4x4", oob.Rows, oob.Cols)
			}
		})
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
	}
	for _, tc := range tests {
		if got := Fade(tc.in); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Fade(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
	if Fade(0.25) >= 0.25 {
		t.Error("Fade should ease in below the identity near 0")
	}
}
