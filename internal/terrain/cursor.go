package terrain

// Cursor walks the noise array to pick platform heights. The column moves
// one step per platform; the row only moves on the tick-driven rotation.
type Cursor struct {
	Row, Col int
	rows     int
	cols     int
}

// NewCursor returns a cursor at (0, 0) over a rows x cols array.
func NewCursor(rows, cols int) *Cursor {
	return &Cursor{rows: rows, cols: cols}
}

// AdvanceRow rotates to the next row, modulo rows-1.
func (c *Cursor) AdvanceRow() {
	if c.rows <= 1 {
		return
	}
	c.Row = (c.Row + 1) % (c.rows - 1)
}

// Next returns the current cell and moves the column, wrapping at the width.
func (c *Cursor) Next() (row, col int) {
	row, col = c.Row, c.Col
	if c.cols > 0 {
		c.Col = (c.Col + 1) % c.cols
	}
	return row, col
}

// NextHeight returns the platform height under the cursor and advances it.
func (s *Sampler) NextHeight(c *Cursor) float64 {
	row, col := c.Next()
	return s.HeightAt(s.Value(row, col))
}
