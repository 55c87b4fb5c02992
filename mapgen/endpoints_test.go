package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/mapgen"
)

func TestPlaceEndpoints_ScanOrder(t *testing.T) {
	g := grid.MustParse(
		"#..#",
		"#..#",
		"#...",
	)
	start, end, err := mapgen.PlaceEndpoints(g)
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{X: 1, Y: 0}, start)
	assert.Equal(t, grid.Coord{X: 3, Y: 0}, end)
	assert.Equal(t, "#..#\n#..#\n#S.E", g.String())
}

func TestPlaceEndpoints_NotEnoughRoom(t *testing.T) {
	g := grid.MustParse("#.#")
	_, _, err := mapgen.PlaceEndpoints(g)
	assert.ErrorIs(t, err, mapgen.ErrNoFreeTile)
	assert.Equal(t, "#.#", g.String(), "grid untouched")

	_, _, err = mapgen.PlaceEndpoints(nil)
	assert.ErrorIs(t, err, mapgen.ErrNoFreeTile)
}

// TestGeneratedMapsAreSolvable runs the whole pipeline: every generated map
// with endpoints placed must yield a path.
func TestGeneratedMapsAreSolvable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := mapgen.Generate(14, 10, 0.4, seed)
		require.NoError(t, err)
		_, _, err = mapgen.PlaceEndpoints(g)
		require.NoError(t, err)

		res, err := astar.FindMarked(g)
		require.NoErrorf(t, err, "seed %d:\n%s", seed, g)
		for _, p := range res.Path {
			require.NotEqual(t, grid.Obstacle, g.Kind(p))
		}
	}
}

func TestSample(t *testing.T) {
	g := mapgen.Sample()
	assert.Equal(t, 8, g.Width)
	assert.Equal(t, 6, g.Height)
	assert.Equal(t, []grid.Coord{{X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}}, g.Obstacles())

	res, err := astar.FindMarked(g)
	require.NoError(t, err)
	assert.Equal(t, 56, res.Cost)
}
