package mapgen_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/mapgen"
)

// ExampleGenerate builds a reproducible 10×10 map with 30% obstacles, marks
// the endpoints and solves it. The exact layout depends only on the seed.
func ExampleGenerate() {
	g, err := mapgen.Generate(10, 10, 0.3, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, _, err = mapgen.PlaceEndpoints(g); err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := astar.FindMarked(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("obstacles:", g.Count(grid.Obstacle))
	fmt.Println("center free:", g.Kind(mapgen.Center(10, 10)) == grid.Empty)
	fmt.Println("path found:", len(res.Path) > 0)
	// Output:
	// obstacles: 30
	// center free: true
	// path found: true
}

// ExampleSample prints the fixed demo map.
func ExampleSample() {
	fmt.Println(mapgen.Sample())
	// Output:
	// ........
	// ....#...
	// ..S.#.E.
	// ....#...
	// ........
	// ........
}
