package gridgraph

// ConnectedComponents finds all 4-connected regions of passable cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, ok := range g.cells {
		if !ok || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, seen))
	}
	return comps
}

// Region returns every passable cell 4-connected to p, p included.
// Returns nil if p is blocked or out of bounds.
func (g *Grid) Region(p Point) []Point {
	if !g.Passable(p) {
		return nil
	}
	comp := g.flood(g.Index(p), make([]bool, len(g.cells)))
	out := make([]Point, len(comp))
	for i, idx := range comp {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// SameRegion reports whether a and b are both passable and connected.
func (g *Grid) SameRegion(a, b Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	target := g.Index(b)
	for _, idx := range g.flood(g.Index(a), make([]bool, len(g.cells))) {
		if idx == target {
			return true
		}
	}
	return false
}

// flood collects the component containing i0 and marks it in seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, h := range Headings {
			v := u.Add(h.Delta())
			if !g.Passable(v) {
				continue
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
