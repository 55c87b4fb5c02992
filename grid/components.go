package grid

// Components finds all contiguous regions of passable tiles
// (every Kind except Obstacle), according to conn.
// Returns a slice of components; each component is a slice of tile indices
// (row-major) in BFS discovery order. Components are ordered by their
// lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(conn Connectivity) [][]int {
	seen := make([]bool, len(g.tiles))
	var comps [][]int
	offsets := conn.Offsets()

	for i0, t := range g.tiles {
		if !t.Kind.Passable() || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				v := Coord{X: ux + d[0], Y: uy + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v.X, v.Y)
				if seen[vi] || !g.tiles[vi].Kind.Passable() {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
