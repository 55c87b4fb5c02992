package mapgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/floodfill"
	"github.com/katalvlaran/tilepath/grid"
)

// Generate builds a width×height map with floor(width·height·fraction)
// obstacles placed in a seeded random order. An obstacle is committed only if
// every free cell stays orthogonally reachable from the center cell
// (width/2, height/2), which itself is never blocked.
//
// Validation (in order):
//  1. width, height ≥ 1 (ErrBadDimensions).
//  2. 0 ≤ fraction ≤ 1 (ErrBadFraction).
//  3. options valid (ErrOptionViolation).
//
// Returns ErrUnsatisfiableDensity when a full pass over all coordinates
// commits nothing, or when MaxAttempts runs out.
//
// Complexity: O(A·W·H) time where A is the number of draws, O(W·H) memory.
func Generate(width, height int, fraction float64, seed int64, opts ...Option) (*grid.Grid, error) {
	g, _, err := GenerateWithStats(width, height, fraction, seed, opts...)
	return g, err
}

// GenerateWithStats is Generate that also reports run statistics. Stats is
// filled even when an error is returned after generation started.
func GenerateWithStats(width, height int, fraction float64, seed int64, opts ...Option) (*grid.Grid, Stats, error) {
	if width < 1 || height < 1 {
		return nil, Stats{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrBadFraction, fraction)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, Stats{}, o.err
	}

	p := &placer{
		width:  width,
		height: height,
		opts:   o,
		mask:   grid.NewMask(width, height),
		check:  floodfill.NewChecker(width, height),
		center: Center(width, height),
	}
	p.stats.Seed = resolveSeed(seed, o.RandomSeed)
	p.stats.Target = int(math.Floor(float64(width*height) * fraction))

	coords := allCoords(width, height)
	shuffleCoordsInPlace(coords, rngFromSeed(p.stats.Seed))
	p.queue = newDrawQueue(coords)

	if err := p.run(); err != nil {
		return nil, p.stats, err
	}

	g, err := p.mask.Grid()
	if err != nil {
		return nil, p.stats, err
	}
	return g, p.stats, nil
}

// Center returns the reference cell used for accessibility checks.
func Center(width, height int) grid.Coord {
	return grid.Coord{X: width / 2, Y: height / 2}
}

// placer holds the mutable state for a single generation run.
type placer struct {
	width, height int
	opts          Options
	mask          *grid.Mask
	check         *floodfill.Checker
	queue         *drawQueue
	center        grid.Coord
	stats         Stats
}

// run draws candidates until the target is met.
// Invariant: after every iteration all free cells are reachable from center.
func (p *placer) run() error {
	total := p.width * p.height
	idle := 0 // draws since the last commit

	for p.stats.Placed < p.stats.Target {
		if idle >= p.queue.Len() {
			return fmt.Errorf("%w: no admissible cell left, placed %d of %d",
				ErrUnsatisfiableDensity, p.stats.Placed, p.stats.Target)
		}
		if p.opts.MaxAttempts > 0 && p.stats.Attempts >= p.opts.MaxAttempts {
			return fmt.Errorf("%w: %d attempts exhausted, placed %d of %d",
				ErrUnsatisfiableDensity, p.opts.MaxAttempts, p.stats.Placed, p.stats.Target)
		}

		c := p.queue.Next()
		p.stats.Attempts++
		idle++

		// the circular queue hands out committed cells again
		if p.mask.Get(c) {
			continue
		}
		if c == p.center {
			p.stats.Rejected++
			continue
		}

		p.mask.Set(c, true)
		if !p.check.IsFullyAccessible(p.mask, p.center, total-p.stats.Placed-1) {
			p.mask.Set(c, false)
			p.stats.Rejected++
			continue
		}

		p.stats.Placed++
		idle = 0
		p.opts.OnPlace(c)
	}
	return nil
}
