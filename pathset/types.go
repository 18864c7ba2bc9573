package pathset

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for optimal-path queries.
var (
	// ErrNilField indicates a nil *dijkstra.Field was passed.
	ErrNilField = errors.New("pathset: field is nil")

	// ErrGoalOutOfBounds indicates the goal lies outside the field's grid.
	ErrGoalOutOfBounds = errors.New("pathset: goal point out of bounds")

	// ErrIncompleteField indicates the field came from a solve that stopped at
	// the first settled goal, so equal-cost alternatives may be missing.
	ErrIncompleteField = errors.New("pathset: field was cut short by WithStopAtGoal")

	// ErrUnreachable indicates the goal has no finite cost.
	ErrUnreachable = errors.New("pathset: goal unreachable")
)

// TileSet is a set of grid positions with headings collapsed.
type TileSet map[gridgraph.Point]struct{}

// Len returns the number of tiles in the set.
func (ts TileSet) Len() int { return len(ts) }

// Has reports whether p is in the set.
func (ts TileSet) Has(p gridgraph.Point) bool {
	_, ok := ts[p]
	return ok
}

// Sorted returns the tiles in reading order: by Y, then by X.
func (ts TileSet) Sorted() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(ts))
	for p := range ts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (ts TileSet) add(p gridgraph.Point) { ts[p] = struct{}{} }
