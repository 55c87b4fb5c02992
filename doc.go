// Package tilepath is a small toolkit for tile-map games: find the cheapest
// 8-way route between two tiles, and generate random maps that are always
// fully traversable.
//
// What is inside?
//
//	grid/         Grid, Tile, Kind and Coord; ASCII parse/print; obstacle Mask
//	cost/         step costs (10 straight, 14 diagonal), Manhattan×10 heuristic
//	astar/        A* search with per-call state, hooks and step limits
//	floodfill/    4-way reachability checks over an obstacle Mask
//	mapgen/       seeded obstacle placement that never cuts the map in two
//	dijkstra/     exact cost fields, used as a reference and for overlays
//	cmd/gridview  terminal viewer (tcell) for generated maps and routes
//
// Why tilepath?
//
//   - Deterministic – the same seed always produces the same map and route
//   - Re-entrant – no package state; every search owns its scratch data
//   - Hookable – OnExpand and OnPlace report progress without logging
//
// Quick ASCII example (north is up, +Y):
//
//	........
//	....#...
//	..S.#.E.      astar.FindMarked → cost 56
//	....#...
//	........
//	........
//
// Coordinates are (x, y) with (0,0) in the south-west corner; tiles are
// stored row-major (index = y·Width + x).
//
//	go get github.com/katalvlaran/tilepath
package tilepath
