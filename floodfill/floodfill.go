// Package floodfill answers one question for the map generator: after a
// tentative obstacle placement, can every free cell still be reached from a
// reference cell by orthogonal moves?
//
// The fill is a 4-directional breadth-first traversal; diagonals are never
// followed, so two free cells touching only at a corner count as separated.
// Input masks are never written; visited flags live in the Checker.
package floodfill

import (
	"github.com/katalvlaran/tilepath/grid"
)

// Checker holds reusable visited and queue buffers for one mask size.
// A Checker is not safe for concurrent use.
type Checker struct {
	width, height int
	visited       []bool
	queue         []grid.Coord
}

// NewChecker allocates buffers for w×h masks.
func NewChecker(w, h int) *Checker {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Checker{
		width:   w,
		height:  h,
		visited: make([]bool, w*h),
		queue:   make([]grid.Coord, 0, w*h),
	}
}

// IsFullyAccessible reports whether exactly required free cells are
// reachable from ref over orthogonal moves. required is normally the cell
// count minus the obstacle count. A nil mask, an out-of-range ref or a ref
// sitting on an obstacle yields false.
//
// Complexity: O(W·H) time, no allocation after the first call for a size.
func (ck *Checker) IsFullyAccessible(mask *grid.Mask, ref grid.Coord, required int) bool {
	if mask == nil || !mask.InBounds(ref) || mask.Get(ref) {
		return false
	}
	return ck.fill(mask, ref) == required
}

// Reachable returns how many free cells are orthogonally reachable from ref,
// ref included. Returns 0 when ref is out of range or an obstacle.
func (ck *Checker) Reachable(mask *grid.Mask, ref grid.Coord) int {
	if mask == nil || !mask.InBounds(ref) || mask.Get(ref) {
		return 0
	}
	return ck.fill(mask, ref)
}

// fill runs the BFS and returns the reached count. Visited flags stay set
// until the next call so Fill can read them.
func (ck *Checker) fill(mask *grid.Mask, ref grid.Coord) int {
	ck.reset(mask.Width, mask.Height)

	ck.queue = append(ck.queue, ref)
	ck.visited[ref.Y*ck.width+ref.X] = true
	count := 1

	for qi := 0; qi < len(ck.queue); qi++ {
		cur := ck.queue[qi]
		for _, d := range grid.Neighbors4 {
			nb := cur.Add(d[0], d[1])
			if !mask.InBounds(nb) {
				continue
			}
			i := nb.Y*ck.width + nb.X
			if ck.visited[i] || mask.Get(nb) {
				continue
			}
			ck.visited[i] = true
			ck.queue = append(ck.queue, nb)
			count++
		}
	}
	return count
}

// reset clears the buffers, growing them if the mask size changed.
func (ck *Checker) reset(w, h int) {
	if w != ck.width || h != ck.height || len(ck.visited) != w*h {
		ck.width, ck.height = w, h
		ck.visited = make([]bool, w*h)
		ck.queue = make([]grid.Coord, 0, w*h)
		return
	}
	for i := range ck.visited {
		ck.visited[i] = false
	}
	ck.queue = ck.queue[:0]
}

// IsFullyAccessible is the one-shot form of (*Checker).IsFullyAccessible.
func IsFullyAccessible(mask *grid.Mask, ref grid.Coord, required int) bool {
	if mask == nil {
		return false
	}
	return NewChecker(mask.Width, mask.Height).IsFullyAccessible(mask, ref, required)
}

// Reachable is the one-shot form of (*Checker).Reachable.
func Reachable(mask *grid.Mask, ref grid.Coord) int {
	if mask == nil {
		return 0
	}
	return NewChecker(mask.Width, mask.Height).Reachable(mask, ref)
}

// Fill returns a row-major visited bitmap of the cells orthogonally
// reachable from ref. All false when ref is out of range or an obstacle.
func Fill(mask *grid.Mask, ref grid.Coord) []bool {
	if mask == nil {
		return nil
	}
	ck := NewChecker(mask.Width, mask.Height)
	if ck.Reachable(mask, ref) == 0 {
		return make([]bool, mask.Len())
	}
	return ck.visited
}
