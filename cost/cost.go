// Package cost holds the integer movement model used by the path finder.
//
// Orthogonal steps cost Straight (10), diagonal steps cost Diagonal (14, i.e.
// 10·√2 truncated), and the heuristic is the Manhattan distance scaled by 10.
// All arithmetic is integer so results are reproducible bit for bit.
package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

const (
	// Straight is the cost of an orthogonal step.
	Straight = 10
	// Diagonal is the cost of a diagonal step.
	Diagonal = 14
)

// ErrNotAdjacent indicates two consecutive path cells are not 8-neighbors.
var ErrNotAdjacent = errors.New("cost: path cells are not adjacent")

// StepCost returns the incremental cost of moving from a to b:
// 0 for the same cell, Straight for |dx|+|dy| == 1, Diagonal otherwise.
// Only meaningful for neighbors; it never looks at the grid.
func StepCost(a, b grid.Coord) int {
	switch abs(b.X-a.X) + abs(b.Y-a.Y) {
	case 0:
		return 0
	case 1:
		return Straight
	default:
		return Diagonal
	}
}

// Heuristic returns 10·(|end.x − c.x| + |end.y − c.y|).
func Heuristic(c, end grid.Coord) int {
	return Straight * (abs(end.X-c.X) + abs(end.Y-c.Y))
}

// Octile returns the exact cheapest cost between a and b on an open grid:
// Diagonal·min(|dx|,|dy|) + Straight·(max − min).
func Octile(a, b grid.Coord) int {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	diag := min(dx, dy)
	return Diagonal*diag + Straight*(max(dx, dy)-diag)
}

// Chebyshev returns max(|dx|,|dy|), the edge count of a shortest 8-way route.
func Chebyshev(a, b grid.Coord) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y))
}

// Adjacent reports whether b is one of the 8 neighbors of a.
func Adjacent(a, b grid.Coord) bool {
	return a != b && Chebyshev(a, b) == 1
}

// PathCost sums StepCost along path. A nil or single-cell path costs 0.
// Returns ErrNotAdjacent if two consecutive cells are not neighbors.
func PathCost(path []grid.Coord) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		if !Adjacent(path[i-1], path[i]) {
			return 0, fmt.Errorf("%w: %v→%v at step %d", ErrNotAdjacent, path[i-1], path[i], i)
		}
		total += StepCost(path[i-1], path[i])
	}
	return total, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
