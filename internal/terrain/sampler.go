// Package terrain turns a noise array into world heights, colors and the
// water band, and tracks the cursor that feeds new platforms.
package terrain

import (
	"fmt"
	"math"

	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/noise"
)

// GenerateField builds the noise array for a world of rows x cols cells.
// The gradient lattice is one larger than the field on each axis and the
// sampled extent one smaller, so every sample stays inside the lattice.
func GenerateField(backend noise.Backend, rows, cols int, step float64, seed int64) (noise.Array, error) {
	src, err := noise.NewSource(backend, rows+1, cols+1, seed)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	arr, err := noise.GenerateArray(float64(rows-1), float64(cols-1), step, src)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	return arr, nil
}

// Sampler maps noise values to viewport space. All lengths are world units.
type Sampler struct {
	field     noise.Array
	viewW     float64
	viewH     float64
	blockSize float64
}

// NewSampler wraps a noise array for a viewport of viewW x viewH.
func NewSampler(field noise.Array, viewW, viewH, blockSize float64) *Sampler {
	return &Sampler{
		field:     field,
		viewW:     viewW,
		viewH:     viewH,
		blockSize: blockSize,
	}
}

// Field returns the underlying noise array. Callers must not modify it.
func (s *Sampler) Field() noise.Array {
	return s.field
}

// Rows returns the number of noise rows.
func (s *Sampler) Rows() int {
	return s.field.Rows()
}

// Cols returns the number of noise columns.
func (s *Sampler) Cols() int {
	return s.field.Cols()
}

// Value returns the raw noise value at (row, col).
func (s *Sampler) Value(row, col int) float64 {
	return s.field.At(row, col)
}

// HeightAt maps a noise value in [-1, 1] to [blockSize, viewH+blockSize].
func (s *Sampler) HeightAt(v float64) float64 {
	return HeightAt(v, s.viewH, s.blockSize)
}

// HeightAt maps v in [-1, 1] linearly onto [blockSize, h+blockSize].
func HeightAt(v, h, blockSize float64) float64 {
	return h*(v+1)/2 + blockSize
}

// Intensity maps v in [-1, 1] to a byte: -1 is 0, 1 is 255.
func Intensity(v float64) uint8 {
	return uint8(core.ClampF(math.Round((v+1)*127.5), 0, 255))
}

// Grayscale returns the intensity of v on all three channels.
func Grayscale(v float64) core.RGB {
	return core.Gray(Intensity(v))
}

// BlueScale returns the intensity of v on the blue channel only.
func BlueScale(v float64) core.RGB {
	return core.RGB{B: Intensity(v)}
}

// WaterBounds returns the rectangle of the water column for a noise value in
// column col of cols. y0 is the bottom of the viewport; y1 is the surface,
// which sits between a third of the height (v = -1) and 4/3 of it (v = 1).
func (s *Sampler) WaterBounds(v float64, col, cols int) (x0, y0, x1, y1 float64) {
	x0 = s.viewW * float64(col) / float64(cols)
	x1 = s.viewW * float64(col+1) / float64(cols)
	y0 = s.viewH
	y1 = s.viewH*(v+1)/2 + s.viewH/3
	return x0, y0, x1, y1
}
