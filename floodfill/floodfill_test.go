package floodfill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/floodfill"
	"github.com/katalvlaran/tilepath/grid"
)

func c(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

// TestIsFullyAccessible_Open checks an obstacle-free mask from every reference.
func TestIsFullyAccessible_Open(t *testing.T) {
	m := grid.NewMask(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			assert.True(t, floodfill.IsFullyAccessible(m, c(x, y), 24))
		}
	}
	assert.False(t, floodfill.IsFullyAccessible(m, c(0, 0), 23), "count must match exactly")
}

// TestIsFullyAccessible_Wall builds a vertical wall with a single gap, then
// closes the gap: the result flips from true to false.
func TestIsFullyAccessible_Wall(t *testing.T) {
	const w, h = 7, 5
	m := grid.NewMask(w, h)
	ref := c(w/2-2, h/2) // left of the wall

	for y := 0; y < h; y++ {
		if y == 2 {
			continue // the gap
		}
		m.Set(c(3, y), true)
	}
	before := m.Clone()
	require.True(t, floodfill.IsFullyAccessible(m, ref, w*h-m.Count()))
	assert.True(t, m.Equal(before), "mask must not be mutated")

	m.Set(c(3, 2), true)
	assert.False(t, floodfill.IsFullyAccessible(m, ref, w*h-m.Count()))
	assert.Equal(t, 3*h, floodfill.Reachable(m, ref))
}

// TestIsFullyAccessible_NoDiagonals shows that a corner contact does not connect.
//
//	.#
//	#.
func TestIsFullyAccessible_NoDiagonals(t *testing.T) {
	m := grid.NewMask(2, 2)
	m.Set(c(1, 1), true)
	m.Set(c(0, 0), true)
	assert.False(t, floodfill.IsFullyAccessible(m, c(0, 1), 2))
	assert.Equal(t, 1, floodfill.Reachable(m, c(0, 1)))
}

// TestIsFullyAccessible_BadReference covers obstacle, out-of-range and nil inputs.
func TestIsFullyAccessible_BadReference(t *testing.T) {
	m := grid.NewMask(3, 3)
	m.Set(c(1, 1), true)
	assert.False(t, floodfill.IsFullyAccessible(m, c(1, 1), 8))
	assert.False(t, floodfill.IsFullyAccessible(m, c(5, 1), 8))
	assert.False(t, floodfill.IsFullyAccessible(nil, c(0, 0), 0))
	assert.Zero(t, floodfill.Reachable(m, c(-1, 0)))
	assert.Zero(t, floodfill.Reachable(nil, c(0, 0)))
}

// TestChecker_Reuse calls one Checker repeatedly with a changing mask and a
// different mask size, as the generator does.
func TestChecker_Reuse(t *testing.T) {
	ck := floodfill.NewChecker(4, 4)
	m := grid.NewMask(4, 4)
	center := c(2, 2)

	obstacles := []grid.Coord{c(0, 0), c(3, 3), c(0, 3)}
	for i, o := range obstacles {
		m.Set(o, true)
		assert.Truef(t, ck.IsFullyAccessible(m, center, 16-(i+1)), "after %v", o)
	}
	// Seal (3,0) into a pocket.
	m.Set(c(2, 0), true)
	m.Set(c(3, 1), true)
	assert.False(t, ck.IsFullyAccessible(m, center, 16-m.Count()), "(3,0) is cut off")

	small := grid.NewMask(2, 1)
	assert.True(t, ck.IsFullyAccessible(small, c(0, 0), 2))
}

// TestFill returns the visited bitmap.
func TestFill(t *testing.T) {
	g := grid.MustParse(
		"..#.",
		"..#.",
	)
	m := g.Mask()
	seen := floodfill.Fill(m, c(0, 0))
	require.Len(t, seen, 8)
	want := []bool{
		true, true, false, false, // y=0
		true, true, false, false, // y=1
	}
	assert.Equal(t, want, seen)

	none := floodfill.Fill(m, c(2, 0))
	assert.Equal(t, make([]bool, 8), none)
	assert.Nil(t, floodfill.Fill(nil, c(0, 0)))
}
