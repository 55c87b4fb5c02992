package mapgen

import (
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// PlaceEndpoints marks a Start and an End on a generated map.
// Start is the first Empty tile scanning columns left to right, each column
// bottom to top; End is the first Empty tile scanning from the top-right
// corner in the reverse order. g is left untouched when it has fewer than two
// Empty tiles (ErrNoFreeTile).
func PlaceEndpoints(g *grid.Grid) (start, end grid.Coord, err error) {
	if g == nil {
		return start, end, fmt.Errorf("%w: nil grid", ErrNoFreeTile)
	}
	if n := g.Count(grid.Empty); n < 2 {
		return start, end, fmt.Errorf("%w: %d empty", ErrNoFreeTile, n)
	}

	var found bool
	for x := 0; x < g.Width && !found; x++ {
		for y := 0; y < g.Height; y++ {
			if c := (grid.Coord{X: x, Y: y}); g.Kind(c) == grid.Empty {
				start, found = c, true
				break
			}
		}
	}
	if err = g.SetStart(start); err != nil {
		return start, end, err
	}

	found = false
	for x := g.Width - 1; x >= 0 && !found; x-- {
		for y := g.Height - 1; y >= 0; y-- {
			if c := (grid.Coord{X: x, Y: y}); g.Kind(c) == grid.Empty {
				end, found = c, true
				break
			}
		}
	}
	if err = g.SetEnd(end); err != nil {
		return start, end, err
	}
	return start, end, nil
}

// Sample returns the fixed 8×6 demo map: Start (2,3), End (6,3) and a
// three-tile wall at x=4, y=2..4 between them.
func Sample() *grid.Grid {
	g, _ := grid.New(8, 6)
	_ = g.SetStart(grid.Coord{X: 2, Y: 3})
	_ = g.SetEnd(grid.Coord{X: 6, Y: 3})
	for y := 2; y <= 4; y++ {
		_ = g.Set(grid.Coord{X: 4, Y: y}, grid.Obstacle)
	}
	return g
}
