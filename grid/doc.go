// Package grid models a fixed-size 2D tile map.
//
// What:
//
//   - Grid owns one Tile per coordinate of a W×H rectangle, row-major.
//   - Each Tile has a Coord and a Kind: Empty, Obstacle, Start, End or Path.
//   - Mask is a plain obstacle bitmap used by the flood fill and generator.
//   - Components groups passable tiles into 4- or 8-connected regions.
//
// Why:
//
//   - The path finder reads tile kinds only; scores live in its own arena,
//     so one Grid can serve many searches without reset.
//   - Presentation code picks colors from Kind and never touches search state.
//
// Coordinates:
//
//	+Y is North. Parse and String print the top row (y = H-1) first:
//
//	  "..#."    y=2
//	  "S.#E"    y=1
//	  "...."    y=0
//
// Complexity:
//
//   - New, Parse, Clone, Mask: O(W×H) time and memory.
//   - At, Kind, Set, InBounds: O(1).
//   - SetStart, SetEnd, Start, End, Count: O(W×H).
//   - Components: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBadGlyph / ErrBadKind: unknown tile classification.
package grid
