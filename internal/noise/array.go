package noise

import (
	"fmt"
	"math"
)

// Source is anything that can be sampled as a 2D noise field.
// *Grid is the reference implementation.
type Source interface {
	Sample(x, y float64) (float64, error)
}

// Array is a dense 2D block of noise samples, indexed [row][col].
type Array [][]float64

// Rows returns the number of rows.
func (a Array) Rows() int {
	return len(a)
}

// Cols returns the number of columns (zero for an empty array).
func (a Array) Cols() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

// At returns the sample at (row, col).
func (a Array) At(row, col int) float64 {
	return a[row][col]
}

// Summary returns the smallest, largest and mean sample. All three are zero
// for an empty array.
func (a Array) Summary() (lo, hi, mean float64) {
	n := 0
	for i, row := range a {
		for j, v := range row {
			if i == 0 && j == 0 {
				lo, hi = v, v
			}
			lo = min(lo, v)
			hi = max(hi, v)
			mean += v
			n++
		}
	}
	if n > 0 {
		mean /= float64(n)
	}
	return lo, hi, mean
}

// Count returns how many samples of the given step fit in extent.
// A tiny tolerance keeps exact multiples (9 / 0.1) from losing one slot
// to floating point error.
func Count(extent, step float64) int {
	return int(math.Floor(extent/step + 1e-9))
}

// GenerateArray samples src on a regular lattice with spacing step.
// Sample points are x_i = (i+1)*step and y_j = (j+1)*step; row i holds the
// samples for x_i, column j those for y_j. The result has
// Count(xExtent, step) rows and Count(yExtent, step) columns.
func GenerateArray(xExtent, yExtent, step float64, src Source) (Array, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %v", ErrInvalidSize, step)
	}
	xCount := Count(xExtent, step)
	yCount := Count(yExtent, step)
	if xCount <= 0 || yCount <= 0 {
		return nil, fmt.Errorf("%w: extent %vx%v at step %v", ErrInvalidSize, xExtent, yExtent, step)
	}

	out := make(Array, xCount)
	for i := range out {
		out[i] = make([]float64, yCount)
		x := float64(i+1) * step
		for j := range out[i] {
			y := float64(j+1) * step
			v, err := src.Sample(x, y)
			if err != nil {
				return nil, fmt.Errorf("noise: sample (%v, %v): %w", x, y, err)
			}
			out[i][j] = v
		}
	}
	return out, nil
}
