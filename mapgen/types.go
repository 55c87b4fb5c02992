// Options, Stats and sentinel errors for Generate.

package mapgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// Sentinel errors for map generation.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("mapgen: width and height must be at least 1")

	// ErrBadFraction indicates an obstacle fraction outside [0,1] or NaN.
	ErrBadFraction = errors.New("mapgen: obstacle fraction must be within [0,1]")

	// ErrUnsatisfiableDensity indicates no further obstacle can be placed
	// without cutting a free cell off from the center, or the attempt cap ran out.
	ErrUnsatisfiableDensity = errors.New("mapgen: obstacle density cannot be reached")

	// ErrNoFreeTile indicates PlaceEndpoints found fewer than two Empty tiles.
	ErrNoFreeTile = errors.New("mapgen: not enough empty tiles for start and end")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mapgen: invalid option supplied")
)

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	// RandomSeed ignores the seed argument and seeds from the clock.
	RandomSeed bool

	// MaxAttempts, if > 0, caps the number of candidate draws.
	MaxAttempts int

	// OnPlace is called after each committed obstacle.
	OnPlace func(c grid.Coord)

	err error
}

// DefaultOptions returns Options with a deterministic seed, no attempt cap
// and a no-op OnPlace.
func DefaultOptions() Options {
	return Options{
		RandomSeed:  false,
		MaxAttempts: 0,
		OnPlace:     func(grid.Coord) {},
	}
}

// WithRandomSeed seeds the shuffle from the clock. The seed actually used is
// reported in Stats.Seed so a map can be reproduced later.
func WithRandomSeed() Option {
	return func(o *Options) { o.RandomSeed = true }
}

// WithMaxAttempts caps candidate draws.
//
//	n > 0: at most n draws
//	n == 0: no cap beyond the full-cycle rule
//	n < 0: invalid option → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithOnPlace registers a callback run after each committed obstacle.
func WithOnPlace(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// Stats describes one generation run.
type Stats struct {
	Seed     int64 // seed actually used for the shuffle
	Target   int   // floor(width·height·fraction)
	Placed   int   // obstacles committed
	Attempts int   // candidates drawn
	Rejected int   // candidates undone (center or connectivity)
}
