package astar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/grid"
)

// ExampleFindMarked demonstrates a detour around a short wall.
// Scenario:
//
//   - 8×6 map, Start at (2,3), End at (6,3)
//   - Obstacles at (4,2), (4,3), (4,4)
//   - The straight route would cost 40; the detour takes four diagonals.
func ExampleFindMarked() {
	g := grid.MustParse(
		"........",
		"....#...",
		"..S.#.E.",
		"....#...",
		"........",
		"........",
	)

	res, err := astar.FindMarked(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)

	_ = astar.MarkPath(g, res.Path)
	fmt.Println(g)
	// Output:
	// path: [(2,3) (3,4) (4,5) (5,4) (6,3)]
	// cost: 56
	// ....*...
	// ...*#*..
	// ..S.#.E.
	// ....#...
	// ........
	// ........
}

// ExampleFindPath_noPath shows that an unreachable end is reported as ErrNoPath.
func ExampleFindPath_noPath() {
	g := grid.MustParse(
		"..#.",
		"..#.",
		"..#.",
	)
	_, err := astar.FindPath(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 2})
	fmt.Println(errors.Is(err, astar.ErrNoPath))
	// Output:
	// true
}
