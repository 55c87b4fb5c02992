package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/mapgen"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDistances_Validation(t *testing.T) {
	g := grid.MustParse(
		"..",
		"#.",
	)
	tests := []struct {
		name string
		g    *grid.Grid
		src  grid.Coord
		opts []dijkstra.Option
		want error
	}{
		{"nil grid", nil, grid.Coord{}, nil, dijkstra.ErrNilGrid},
		{"out of bounds", g, grid.Coord{X: 2, Y: 0}, nil, dijkstra.ErrOutOfBounds},
		{"blocked source", g, grid.Coord{X: 0, Y: 0}, nil, dijkstra.ErrBlockedSource},
		{"negative cap", g, grid.Coord{X: 1, Y: 1}, []dijkstra.Option{dijkstra.WithMaxDistance(-1)}, dijkstra.ErrBadMaxDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := dijkstra.Distances(tt.g, tt.src, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, f)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDistances_OpenGrid(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	f, err := dijkstra.Distances(g, grid.Coord{})
	require.NoError(t, err)

	want := map[grid.Coord]int64{
		{X: 0, Y: 0}: 0,
		{X: 1, Y: 0}: 10,
		{X: 2, Y: 0}: 20,
		{X: 1, Y: 1}: 14,
		{X: 1, Y: 2}: 24,
		{X: 2, Y: 2}: 28,
	}
	for c, d := range want {
		got, ok := f.Dist(c)
		require.Truef(t, ok, "%v reachable", c)
		assert.Equalf(t, d, got, "dist %v", c)
	}
	assert.Equal(t, 9, f.Reachable())

	_, ok := f.Dist(grid.Coord{X: -1, Y: 0})
	assert.False(t, ok)
}

// The octile distance is exact on an obstacle-free grid.
func TestDistances_MatchesOctile(t *testing.T) {
	g, err := grid.New(7, 5)
	require.NoError(t, err)
	src := grid.Coord{X: 2, Y: 1}

	f, err := dijkstra.Distances(g, src)
	require.NoError(t, err)
	for _, tile := range g.Tiles() {
		d, ok := f.Dist(tile.Coord)
		require.True(t, ok)
		assert.Equal(t, int64(cost.Octile(src, tile.Coord)), d)
	}
}

func TestDistances_AroundWall(t *testing.T) {
	g := mapgen.Sample()
	start, _ := g.Start()
	end, _ := g.End()

	f, err := dijkstra.Distances(g, start)
	require.NoError(t, err)

	d, ok := f.Dist(end)
	require.True(t, ok)
	assert.Equal(t, int64(56), d)

	_, ok = f.Dist(grid.Coord{X: 4, Y: 3})
	assert.False(t, ok, "obstacles are never reached")
}

func TestDistances_Enclosed(t *testing.T) {
	g := grid.MustParse(
		"...",
		".#.",
		"#.#",
	)
	f, err := dijkstra.Distances(g, grid.Coord{X: 0, Y: 2})
	require.NoError(t, err)

	// (1,0) is only reachable diagonally past the wall.
	d, ok := f.Dist(grid.Coord{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, int64(24), d)
	assert.Equal(t, 6, f.Reachable())
}

func TestDistances_MaxDistance(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	f, err := dijkstra.Distances(g, grid.Coord{}, dijkstra.WithMaxDistance(20))
	require.NoError(t, err)
	assert.Equal(t, 6, f.Reachable())

	_, ok := f.Dist(grid.Coord{X: 2, Y: 1})
	assert.False(t, ok, "24 exceeds the cap")
	d, ok := f.Dist(grid.Coord{X: 0, Y: 2})
	require.True(t, ok)
	assert.Equal(t, int64(20), d)

	f, err = dijkstra.Distances(g, grid.Coord{}, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Reachable())
}

// ------------------------------------------------------------------------
// 3. PathTo
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	f, err := dijkstra.Distances(g, grid.Coord{})
	require.NoError(t, err)
	_, err = f.PathTo(grid.Coord{X: 2, Y: 2})
	assert.ErrorIs(t, err, dijkstra.ErrNoPathStored)

	f, err = dijkstra.Distances(g, grid.Coord{}, dijkstra.WithReturnPath())
	require.NoError(t, err)
	path, err := f.PathTo(grid.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, path)

	path, err = f.PathTo(grid.Coord{})
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{}}, path)

	_, err = f.PathTo(grid.Coord{X: 3, Y: 0})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestPathTo_CostMatchesDist(t *testing.T) {
	g := mapgen.Sample()
	start, _ := g.Start()

	f, err := dijkstra.Distances(g, start, dijkstra.WithReturnPath())
	require.NoError(t, err)
	for _, tile := range g.Tiles() {
		d, ok := f.Dist(tile.Coord)
		if !ok {
			continue
		}
		path, err := f.PathTo(tile.Coord)
		require.NoError(t, err)
		c, err := cost.PathCost(path)
		require.NoError(t, err)
		assert.Equal(t, d, int64(c), "path to %v", tile.Coord)
	}
}

// ------------------------------------------------------------------------
// 4. A* against the exact field
// ------------------------------------------------------------------------

// A* never beats the exact cost and always agrees on reachability.
func TestDistances_BoundsAStar(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := mapgen.Generate(12, 9, 0.35, seed)
		require.NoError(t, err)
		start, end, err := mapgen.PlaceEndpoints(g)
		require.NoError(t, err)

		f, err := dijkstra.Distances(g, start)
		require.NoError(t, err)
		d, ok := f.Dist(end)
		require.True(t, ok, "generated maps are connected")

		res, err := astar.FindPath(g, start, end)
		require.NoError(t, err)
		assert.GreaterOrEqualf(t, int64(res.Cost), d, "seed %d", seed)
	}
}
