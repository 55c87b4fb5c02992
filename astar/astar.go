// Package astar implements A* shortest-path search on a grid.Grid with
// 8-directional movement.
//
// Scores follow package cost: orthogonal steps 10, diagonal steps 14,
// heuristic 10·Manhattan. Search state lives in a per-call arena indexed by
// tile index, so the grid is never written and can be shared by concurrent
// searches.
//
// Complexity:
//
//   - Time:  O(N log N), N = W·H (each tile enters the heap once and is
//     fixed in place on relaxation).
//   - Space: O(N) for the arena and heap.
//
// Tie-break:
//
//	The open set is a min-heap on (F, seq) where seq is the order in which a
//	tile was first discovered. Relaxing a tile keeps its seq, so among equal
//	F the earliest-discovered tile is expanded first.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
)

const (
	unseen uint8 = iota
	open
	closed
)

// node is the arena record for one tile.
type node struct {
	g, h, f int
	parent  int // tile index of the predecessor; -1 if none
	seq     int // discovery order, secondary heap key
	state   uint8
	heapIdx int
}

// FindPath searches g for the cheapest route from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must lie inside g (ErrOutOfBounds).
//  3. start and end must not be obstacles (ErrBlockedEndpoint).
//  4. options must be valid (ErrOptionViolation).
//
// Returns ErrNoPath (possibly wrapped with a step-limit or context reason)
// when end cannot be reached. If start == end the path is [start] at cost 0.
func FindPath(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Width, g.Height)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, g.Width, g.Height)
	}
	if g.Kind(start) == grid.Obstacle {
		return nil, fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
	}
	if g.Kind(end) == grid.Obstacle {
		return nil, fmt.Errorf("%w: end %v", ErrBlockedEndpoint, end)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &search{
		g:     g,
		opts:  o,
		end:   end,
		endIx: g.Index(end),
		nodes: make([]node, g.Len()),
	}
	s.pq.nodes = s.nodes
	if err := s.run(g.Index(start)); err != nil {
		return nil, err
	}

	path, err := s.reconstruct(g.Index(start))
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:     path,
		Cost:     s.nodes[s.endIx].g,
		Expanded: s.expanded,
		g:        g,
		nodes:    s.nodes,
	}, nil
}

// FindMarked runs FindPath between the tiles classified Start and End.
// Returns ErrMissingStart or ErrMissingEnd if either is absent.
func FindMarked(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrMissingStart
	}
	end, ok := g.End()
	if !ok {
		return nil, ErrMissingEnd
	}
	return FindPath(g, start, end, opts...)
}

// MarkPath classifies the Empty tiles of path as grid.Path. Start, End and
// existing Path tiles are left as they are. An obstacle or out-of-range cell
// on the path yields ErrCorruptPath and leaves g untouched.
func MarkPath(g *grid.Grid, path []grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, c := range path {
		if g.Kind(c) == grid.Obstacle {
			return fmt.Errorf("%w: %v is not walkable", ErrCorruptPath, c)
		}
	}
	for _, c := range path {
		if g.Kind(c) != grid.Empty {
			continue
		}
		if err := g.Set(c, grid.Path); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptPath, err)
		}
	}
	return nil
}

// search holds the mutable state for a single A* execution.
type search struct {
	g        *grid.Grid
	opts     Options
	end      grid.Coord
	endIx    int
	nodes    []node
	pq       openSet
	seq      int
	expanded int
}

// run is the main loop. It returns nil once end is selected from the open set.
func (s *search) run(startIx int) error {
	st := &s.nodes[startIx]
	st.parent = -1
	s.score(st, s.g.CoordOf(startIx), 0)
	s.push(startIx)

	ctx := s.opts.Ctx
	for s.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrNoPath, ctx.Err())
		default:
		}

		cur := heap.Pop(&s.pq).(int)
		if cur == s.endIx {
			return nil
		}
		if s.opts.MaxSteps > 0 && s.expanded >= s.opts.MaxSteps {
			return fmt.Errorf("%w: step limit %d reached", ErrNoPath, s.opts.MaxSteps)
		}

		cn := &s.nodes[cur]
		cn.state = closed
		s.expanded++
		cc := s.g.CoordOf(cur)
		s.opts.OnExpand(cc, s.scoreOf(cur))

		s.relax(cur, cc)
	}

	return ErrNoPath
}

// relax visits the 8 neighbors of cur in clockwise order from North.
func (s *search) relax(cur int, cc grid.Coord) {
	cg := s.nodes[cur].g
	for _, d := range grid.Neighbors8 {
		nc := cc.Add(d[0], d[1])
		if !s.g.InBounds(nc) || s.g.Kind(nc) == grid.Obstacle {
			continue
		}
		ni := s.g.Index(nc)
		nn := &s.nodes[ni]
		step := cost.StepCost(cc, nc)

		switch nn.state {
		case closed:
			continue
		case unseen:
			nn.parent = cur
			s.score(nn, nc, cg+step)
			s.push(ni)
		case open:
			if nn.g > cg+step {
				nn.parent = cur
				s.score(nn, nc, cg+step)
				heap.Fix(&s.pq, nn.heapIdx)
			}
		}
	}
}

func (s *search) score(n *node, c grid.Coord, g int) {
	n.g = g
	n.h = cost.Heuristic(c, s.end)
	n.f = n.g + n.h
}

func (s *search) push(ix int) {
	n := &s.nodes[ix]
	n.state = open
	n.seq = s.seq
	s.seq++
	heap.Push(&s.pq, ix)
}

func (s *search) scoreOf(ix int) Score {
	n := &s.nodes[ix]
	sc := Score{G: n.g, H: n.h, F: n.f}
	if n.parent >= 0 {
		sc.Parent = s.g.CoordOf(n.parent)
		sc.HasParent = true
	}
	return sc
}

// reconstruct walks predecessor links from end back to start and reverses them.
// A visited guard turns a broken chain into ErrCorruptPath instead of a hang.
func (s *search) reconstruct(startIx int) ([]grid.Coord, error) {
	seen := make(map[int]struct{})
	var rev []grid.Coord
	for at := s.endIx; ; at = s.nodes[at].parent {
		if at < 0 {
			return nil, fmt.Errorf("%w: chain ended before start", ErrCorruptPath)
		}
		if _, dup := seen[at]; dup {
			return nil, fmt.Errorf("%w: cycle at %v", ErrCorruptPath, s.g.CoordOf(at))
		}
		seen[at] = struct{}{}
		rev = append(rev, s.g.CoordOf(at))
		if at == startIx {
			break
		}
	}

	path := make([]grid.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path, nil
}

// openSet is a min-heap of tile indices ordered by (f, seq).
// It shares the search arena and keeps node.heapIdx current for heap.Fix.
type openSet struct {
	items []int
	nodes []node
}

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq.items) }

// Less orders by F, then by discovery order.
func (pq openSet) Less(i, j int) bool {
	a, b := &pq.nodes[pq.items[i]], &pq.nodes[pq.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Swap swaps two elements and updates their heap positions.
func (pq openSet) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.nodes[pq.items[i]].heapIdx = i
	pq.nodes[pq.items[j]].heapIdx = j
}

// Push adds a tile index; called by heap.Push.
func (pq *openSet) Push(x any) {
	ix := x.(int)
	pq.nodes[ix].heapIdx = len(pq.items)
	pq.items = append(pq.items, ix)
}

// Pop removes the last element; called by heap.Pop.
func (pq *openSet) Pop() any {
	old := pq.items
	n := len(old)
	ix := old[n-1]
	pq.items = old[:n-1]
	pq.nodes[ix].heapIdx = -1
	return ix
}
