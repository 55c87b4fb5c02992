// Package dijkstra computes exact movement-cost fields on a tile grid.
//
// Overview:
//
//   - Distances expands tiles from a single source in order of true cost,
//     moving in 8 directions with cost.Straight (10) and cost.Diagonal (14).
//   - The result is a Field: per-tile cheapest cost plus, optionally, the
//     predecessor of every reached tile.
//
// When to use:
//
//   - As the exact reference for package astar, whose Manhattan heuristic is
//     fast but may settle for a slightly dearer route around obstacles.
//   - For cost overlays (cmd/gridview) and reachability queries that need
//     distances rather than a yes/no answer.
//
// Key features:
//
//   - ReturnPath: keep predecessors so Field.PathTo can rebuild any route.
//   - MaxDistance: stop once the frontier is dearer than the cap.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W·H tiles; each tile relaxes at most 8 moves.
//   - Space: O(N) plus O(8N) worst-case heap entries (lazy decrease-key).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrOutOfBounds, ErrBlockedSource: invalid source.
//   - ErrBadMaxDistance: negative MaxDistance.
//   - ErrNoPathStored, ErrUnreachable: Field.PathTo misuse.
package dijkstra
