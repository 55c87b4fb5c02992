// Kind, Coord, Tile, neighbor tables and sentinel errors.

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadGlyph indicates an unknown character in a textual grid.
	ErrBadGlyph = errors.New("grid: unknown tile glyph")
	// ErrBadKind indicates a Kind value outside the defined enum.
	ErrBadKind = errors.New("grid: unknown tile kind")
)

// Kind classifies a tile. Presentation code reads it to choose colors.
type Kind uint8

const (
	// Empty is a free, walkable tile.
	Empty Kind = iota
	// Obstacle blocks movement.
	Obstacle
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Path marks a tile on a reconstructed route.
	Path
)

var kindNames = [...]string{"Empty", "Obstacle", "Start", "End", "Path"}

// kindGlyphs is the textual form used by Parse and String.
var kindGlyphs = [...]byte{'.', '#', 'S', 'E', '*'}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// Passable reports whether a tile of this kind can be entered.
func (k Kind) Passable() bool { return k != Obstacle }

// Glyph returns the single-character form of k.
func (k Kind) Glyph() byte {
	if k.Valid() {
		return kindGlyphs[k]
	}
	return '?'
}

// KindFromGlyph maps a glyph back to its Kind.
func KindFromGlyph(b byte) (Kind, error) {
	for i, g := range kindGlyphs {
		if g == b {
			return Kind(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrBadGlyph, b)
}

// Coord is a plain (x, y) pair. It carries no tile state and is used for
// addressing, obstacle bookkeeping and shuffle queues alike.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// String formats c as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Neighbors8 lists the 8 movement offsets in fixed clockwise order
// starting at North. North is +Y.
var Neighbors8 = [8][2]int{
	{0, 1},   // N
	{1, 1},   // NE
	{1, 0},   // E
	{1, -1},  // SE
	{0, -1},  // S
	{-1, -1}, // SW
	{-1, 0},  // W
	{-1, 1},  // NW
}

// Neighbors4 lists the orthogonal offsets in the same clockwise order.
var Neighbors4 = [4][2]int{
	{0, 1},  // N
	{1, 0},  // E
	{0, -1}, // S
	{-1, 0}, // W
}

// Offsets returns the neighbor offsets for conn.
func (conn Connectivity) Offsets() [][2]int {
	if conn == Conn8 {
		return Neighbors8[:]
	}
	return Neighbors4[:]
}

// Tile is one addressable cell: an immutable position plus its classification.
// Search scores are kept by the search itself, never on the tile.
type Tile struct {
	Coord
	Kind Kind
}

// Grid owns exactly one Tile per coordinate of a Width×Height rectangle,
// stored row-major (index = y*Width + x).
//
// A Grid is not safe for concurrent mutation; concurrent read-only use
// (e.g. several searches over one map) is fine.
type Grid struct {
	Width, Height int
	tiles         []Tile
}
