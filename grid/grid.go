// Grid construction, text form, tile access and endpoint bookkeeping.

package grid

import (
	"fmt"
	"strings"
)

// New constructs an all-Empty grid of the given size.
// Returns ErrEmptyGrid if w or h is not positive.
// Complexity: O(W×H) time and memory.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	g := &Grid{Width: w, Height: h, tiles: make([]Tile, w*h)}
	for i := range g.tiles {
		x, y := g.Coordinate(i)
		g.tiles[i] = Tile{Coord: Coord{X: x, Y: y}, Kind: Empty}
	}

	return g, nil
}

// FromKinds builds a grid from kinds[y][x]. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadKind.
func FromKinds(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for _, row := range kinds {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range kinds {
		for x, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadKind, k, x, y)
			}
			g.tiles[g.index(x, y)].Kind = k
		}
	}

	return g, nil
}

// Parse builds a grid from text rows. The first row is the top of the map
// (y = Height-1) so that North (+Y) points up on screen.
//
// Glyphs: '.' Empty, '#' Obstacle, 'S' Start, 'E' End, '*' Path.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	kinds := make([][]Kind, h)
	for i, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		y := h - 1 - i
		kinds[y] = make([]Kind, w)
		for x := 0; x < w; x++ {
			k, err := KindFromGlyph(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, x, err)
			}
			kinds[y][x] = k
		}
	}

	return FromKinds(kinds)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid in the Parse format, top row first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			b.WriteByte(g.tiles[g.index(x, y)].Kind.Glyph())
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Len returns the number of tiles, Width×Height.
func (g *Grid) Len() int { return len(g.tiles) }

// At returns the tile at c.
func (g *Grid) At(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.tiles[g.index(c.X, c.Y)], true
}

// Kind returns the classification at c; out-of-range coordinates read as Obstacle.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.tiles[g.index(c.X, c.Y)].Kind
}

// Tiles returns the tiles in row-major order. The slice is shared; do not modify it.
func (g *Grid) Tiles() []Tile { return g.tiles }

// Set classifies the tile at c. Setting Start or End through Set does not
// clear an existing Start/End; use SetStart / SetEnd for that.
func (g *Grid) Set(c Coord, k Kind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrBadKind, k)
	}
	g.tiles[g.index(c.X, c.Y)].Kind = k
	return nil
}

// SetStart makes c the only Start tile. A previous Start reverts to Empty.
func (g *Grid) SetStart(c Coord) error { return g.setUnique(c, Start) }

// SetEnd makes c the only End tile. A previous End reverts to Empty.
func (g *Grid) SetEnd(c Coord) error { return g.setUnique(c, End) }

func (g *Grid) setUnique(c Coord, k Kind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	for i := range g.tiles {
		if g.tiles[i].Kind == k {
			g.tiles[i].Kind = Empty
		}
	}
	g.tiles[g.index(c.X, c.Y)].Kind = k
	return nil
}

// Start returns the first tile classified Start in row-major order.
func (g *Grid) Start() (Coord, bool) { return g.find(Start) }

// End returns the first tile classified End in row-major order.
func (g *Grid) End() (Coord, bool) { return g.find(End) }

func (g *Grid) find(k Kind) (Coord, bool) {
	for _, t := range g.tiles {
		if t.Kind == k {
			return t.Coord, true
		}
	}
	return Coord{}, false
}

// Count returns how many tiles are classified k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, t := range g.tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Obstacles lists obstacle coordinates in row-major order.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for _, t := range g.tiles {
		if t.Kind == Obstacle {
			out = append(out, t.Coord)
		}
	}
	return out
}

// Reset turns every Path tile back into Empty, leaving obstacles and endpoints.
func (g *Grid) Reset() {
	for i := range g.tiles {
		if g.tiles[i].Kind == Path {
			g.tiles[i].Kind = Empty
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{Width: g.Width, Height: g.Height, tiles: tiles}
}

// Mask returns a fresh obstacle mask of g.
func (g *Grid) Mask() *Mask {
	m := NewMask(g.Width, g.Height)
	for i, t := range g.tiles {
		m.cells[i] = t.Kind == Obstacle
	}
	return m
}

// Index maps c to its row-major index. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int { return g.index(c.X, c.Y) }

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// CoordOf converts a row-major index back to a Coord.
func (g *Grid) CoordOf(idx int) Coord {
	x, y := g.Coordinate(idx)
	return Coord{X: x, Y: y}
}
