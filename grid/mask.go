package grid

// Mask is a Width×Height obstacle bitmap, row-major, independent of any Grid.
// true means obstacle.
type Mask struct {
	Width, Height int
	cells         []bool
}

// NewMask returns an obstacle-free mask. Non-positive sizes yield an empty mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{Width: w, Height: h, cells: make([]bool, w*h)}
}

// InBounds reports whether c lies within the mask.
func (m *Mask) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Len returns Width×Height.
func (m *Mask) Len() int { return len(m.cells) }

// Get reports whether c is an obstacle. Out-of-range reads as obstacle.
func (m *Mask) Get(c Coord) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.cells[c.Y*m.Width+c.X]
}

// Set marks or clears an obstacle at c. Out-of-range writes are ignored.
func (m *Mask) Set(c Coord, obstacle bool) {
	if m.InBounds(c) {
		m.cells[c.Y*m.Width+c.X] = obstacle
	}
}

// Toggle flips c and returns the new state. Out-of-range cells stay obstacles.
func (m *Mask) Toggle(c Coord) bool {
	if !m.InBounds(c) {
		return true
	}
	i := c.Y*m.Width + c.X
	m.cells[i] = !m.cells[i]
	return m.cells[i]
}

// Count returns the number of obstacles.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() *Mask {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &Mask{Width: m.Width, Height: m.Height, cells: cells}
}

// Equal reports whether m and o have the same size and obstacles.
func (m *Mask) Equal(o *Mask) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Grid materializes m as a Grid of Obstacle and Empty tiles.
func (m *Mask) Grid() (*Grid, error) {
	g, err := New(m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	for i, v := range m.cells {
		if v {
			g.tiles[i].Kind = Obstacle
		}
	}
	return g, nil
}
