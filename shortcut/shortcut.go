// Package shortcut finds pairs of reachable cells whose direct Manhattan
// jump would beat the walked route between them.
//
// Every query reads one precomputed dijkstra.Field. A jump p → q of length
// d saves dist[q] - (dist[p] + d); no search is rerun per candidate, so the
// cost is O(cells × R²) for jump radius R instead of one full solve per
// removed wall.
package shortcut

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Enumerate counts, per saving amount, the ordered pairs (p, q) of reachable
// cells with 1 ≤ |p-q|₁ ≤ maxJump whose jump saves a positive amount.
//
// Directional fields are read through Field.At, the cheapest heading of each
// cell; in uniform-cost fields savings are always even because walked
// distance and Manhattan distance share parity on a grid.
func Enumerate(f *dijkstra.Field, maxJump int) (Histogram, error) {
	hist := make(Histogram)
	err := walk(f, maxJump, func(sc Shortcut) {
		hist[sc.Saving]++
	})
	if err != nil {
		return nil, err
	}
	return hist, nil
}

// List returns every shortcut saving at least minSaving (and always more
// than zero), ordered by saving descending, then From, then To in reading order.
func List(f *dijkstra.Field, maxJump int, minSaving int64) ([]Shortcut, error) {
	var out []Shortcut
	err := walk(f, maxJump, func(sc Shortcut) {
		if sc.Saving >= minSaving {
			out = append(out, sc)
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Saving != b.Saving {
			return a.Saving > b.Saving
		}
		if a.From != b.From {
			return less(a.From, b.From)
		}
		return less(a.To, b.To)
	})
	return out, nil
}

// walk calls emit for every positive-saving jump in the field.
func walk(f *dijkstra.Field, maxJump int, emit func(Shortcut)) error {
	if f == nil {
		return ErrNilField
	}
	if maxJump < 1 {
		return fmt.Errorf("%w: got %d", ErrBadJump, maxJump)
	}
	if !f.Complete() {
		return ErrIncompleteField
	}

	g := f.Grid()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gridgraph.Point{X: x, Y: y}
			dp := f.At(p)
			if dp == dijkstra.Inf {
				continue
			}
			diamond(g, p, maxJump, func(q gridgraph.Point, d int) {
				dq := f.At(q)
				if dq == dijkstra.Inf {
					return
				}
				// dp + d cannot overflow: dp < Inf and d is bounded by the grid size.
				if saving := dq - dp - int64(d); saving > 0 {
					emit(Shortcut{From: p, To: q, Length: int64(d), Saving: saving})
				}
			})
		}
	}
	return nil
}

// diamond visits every passable cell q ≠ p with |q-p|₁ ≤ r, passing the
// Manhattan distance. dy spans [-r, r] and, per row, dx spans
// [-(r-|dy|), r-|dy|], both clipped to the grid.
func diamond(g *gridgraph.Grid, p gridgraph.Point, r int, visit func(q gridgraph.Point, d int)) {
	for dy := -r; dy <= r; dy++ {
		y := p.Y + dy
		if y < 0 || y >= g.Height {
			continue
		}
		ady := abs(dy)
		rx := r - ady
		lo, hi := max(-rx, -p.X), min(rx, g.Width-1-p.X)
		for dx := lo; dx <= hi; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := gridgraph.Point{X: p.X + dx, Y: y}
			if !g.Passable(q) {
				continue
			}
			visit(q, ady+abs(dx))
		}
	}
}

func less(a, b gridgraph.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
