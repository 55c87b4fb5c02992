// Package mapgen generates random tile maps that are guaranteed traversable.
//
// What:
//
//   - All coordinates are shuffled once with a seeded Fisher–Yates shuffle.
//   - A circular draw queue hands the shuffled coordinates out forever.
//   - Each candidate is tentatively blocked and kept only if every free cell
//     is still orthogonally reachable from the map center (package floodfill).
//   - PlaceEndpoints marks Start and End; Sample returns the fixed demo map.
//
// Why:
//
//   - Game maps: any two free cells are connected, so any Start/End pair
//     chosen afterwards is solvable by package astar.
//   - Tests: identical (width, height, fraction, seed) give identical maps.
//
// Seed policy:
//
//   - seed == 0 uses a fixed default seed.
//   - WithRandomSeed seeds from the clock; Stats.Seed reports the value.
//
// Termination:
//
//	Generation stops with ErrUnsatisfiableDensity when width·height draws in
//	a row commit nothing (no admissible cell is left) or when WithMaxAttempts
//	runs out.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadFraction, ErrOptionViolation: bad input.
//   - ErrUnsatisfiableDensity: target obstacle count cannot be reached.
//   - ErrNoFreeTile: PlaceEndpoints needs two Empty tiles.
package mapgen
