// Implementation notes:
//
//   - Tiles are addressed by row-major index, so all state lives in slices.
//   - Obstacles are never entered; every other Kind is walkable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
)

// Field is the distance field produced by Distances.
type Field struct {
	Source grid.Coord

	g    *grid.Grid
	dist []int64 // math.MaxInt64 where unreachable
	prev []int   // -1 where none; nil unless ReturnPath
}

// Dist returns the cheapest cost from Source to c and whether c is reachable.
func (f *Field) Dist(c grid.Coord) (int64, bool) {
	if !f.g.InBounds(c) {
		return 0, false
	}
	d := f.dist[f.g.Index(c)]
	if d == math.MaxInt64 {
		return 0, false
	}
	return d, true
}

// Reachable counts tiles with a finite distance, Source included.
func (f *Field) Reachable() int {
	n := 0
	for _, d := range f.dist {
		if d != math.MaxInt64 {
			n++
		}
	}
	return n
}

// PathTo rebuilds the route from Source to c.
// Requires WithReturnPath (ErrNoPathStored); ErrUnreachable if c has no distance.
func (f *Field) PathTo(c grid.Coord) ([]grid.Coord, error) {
	if f.prev == nil {
		return nil, ErrNoPathStored
	}
	if _, ok := f.Dist(c); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, c)
	}
	var rev []grid.Coord
	for at := f.g.Index(c); at >= 0; at = f.prev[at] {
		rev = append(rev, f.g.CoordOf(at))
	}
	path := make([]grid.Coord, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path, nil
}

// Distances computes the cheapest 8-way movement cost from src to every tile of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. src must lie inside g (ErrOutOfBounds).
//  3. src must not be an obstacle (ErrBlockedSource).
//  4. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Distances(g *grid.Grid, src grid.Coord, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(src) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, src)
	}
	if g.Kind(src) == grid.Obstacle {
		return nil, fmt.Errorf("%w: %v", ErrBlockedSource, src)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	r.init(g.Index(src))
	r.process()

	return &Field{Source: src, g: g, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // read-only within Dijkstra
	options Options
	dist    []int64 // tile index → current best distance from source
	prev    []int   // tile index → predecessor index; nil unless ReturnPath
	visited []bool  // tracks if a tile's distance is finalized
	pq      nodePQ  // min-heap of nodeItem for lazy priority queue
}

// init sets dist to +∞ everywhere, the source to 0, and seeds the heap.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		if r.prev != nil {
			r.prev[i] = -1
		}
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest tile and relaxes its neighbors.
// Stops when the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}

	// tiles discovered beyond the cap stay unreachable
	for i, d := range r.dist {
		if !r.visited[i] && d != math.MaxInt64 {
			r.dist[i] = math.MaxInt64
			if r.prev != nil {
				r.prev[i] = -1
			}
		}
	}
}

// relax tries to improve the 8 neighbors of tile u.
func (r *runner) relax(u int) {
	uc := r.g.CoordOf(u)
	for _, d := range grid.Neighbors8 {
		vc := uc.Add(d[0], d[1])
		if !r.g.InBounds(vc) || r.g.Kind(vc) == grid.Obstacle {
			continue
		}
		v := r.g.Index(vc)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + int64(cost.StepCost(uc, vc))
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a tile and its tentative distance from the source.
type nodeItem struct {
	idx  int   // tile index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
