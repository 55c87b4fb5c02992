// Options and sentinel errors for Distances.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Distances.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates the source coordinate is outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrBlockedSource indicates the source tile is an obstacle.
	ErrBlockedSource = errors.New("dijkstra: source is an obstacle")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPathStored indicates PathTo was used on a field built without ReturnPath.
	ErrNoPathStored = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates the requested tile has no finite distance.
	ErrUnreachable = errors.New("dijkstra: tile unreachable from source")
)

// Options configures the behavior of Distances.
//
// ReturnPath  – if true, keep predecessors for Field.PathTo.
// MaxDistance – tiles whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	ReturnPath  bool  // Whether to keep the predecessor slice
	MaxDistance int64 // Maximum distance to explore

	err error
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithReturnPath enables predecessor tracking in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values are recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - ReturnPath:  false
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
