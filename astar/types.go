// Options, Score, Result and sentinel errors for FindPath.

package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// Sentinel errors returned by FindPath and friends.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates the start or end coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")

	// ErrBlockedEndpoint indicates the start or end tile is an obstacle.
	ErrBlockedEndpoint = errors.New("astar: endpoint is an obstacle")

	// ErrMissingStart indicates FindMarked found no tile classified Start.
	ErrMissingStart = errors.New("astar: grid has no start tile")

	// ErrMissingEnd indicates FindMarked found no tile classified End.
	ErrMissingEnd = errors.New("astar: grid has no end tile")

	// ErrNoPath indicates the end is unreachable from the start. It is an
	// ordinary outcome, not a fault; step-limit and context cutoffs wrap it too.
	ErrNoPath = errors.New("astar: no path found")

	// ErrCorruptPath indicates predecessor links do not lead back to the start.
	ErrCorruptPath = errors.New("astar: predecessor chain is broken")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Option configures FindPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a single search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxSteps, if > 0, caps the number of expanded tiles.
	MaxSteps int

	// OnExpand is called when a tile is moved to the closed set.
	OnExpand func(c grid.Coord, s Score)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no step limit
//   - no-op OnExpand
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnExpand: func(grid.Coord, Score) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps stops the search after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnExpand registers a callback run for each expanded tile.
func WithOnExpand(fn func(c grid.Coord, s Score)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Score is the search state of one visited tile.
type Score struct {
	G, H, F   int        // cost from start, heuristic to end, G+H
	Parent    grid.Coord // predecessor on the best known route
	HasParent bool       // false for the start tile
}

// Result is the outcome of a successful search.
type Result struct {
	// Path runs from start to end inclusive.
	Path []grid.Coord
	// Cost is the G score of the end tile.
	Cost int
	// Expanded counts tiles moved to the closed set.
	Expanded int

	g     *grid.Grid
	nodes []node
}

// Score returns the search state recorded for c, if c was visited.
func (r *Result) Score(c grid.Coord) (Score, bool) {
	if r == nil || !r.g.InBounds(c) {
		return Score{}, false
	}
	n := &r.nodes[r.g.Index(c)]
	if n.state == unseen {
		return Score{}, false
	}
	s := Score{G: n.g, H: n.h, F: n.f}
	if n.parent >= 0 {
		s.Parent = r.g.CoordOf(n.parent)
		s.HasParent = true
	}
	return s, true
}

// Visited returns how many tiles were discovered (open or closed).
func (r *Result) Visited() int {
	if r == nil {
		return 0
	}
	n := 0
	for i := range r.nodes {
		if r.nodes[i].state != unseen {
			n++
		}
	}
	return n
}
