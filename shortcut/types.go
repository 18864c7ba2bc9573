package shortcut

import (
	"errors"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for shortcut enumeration.
var (
	// ErrNilField indicates a nil *dijkstra.Field was passed.
	ErrNilField = errors.New("shortcut: field is nil")

	// ErrBadJump indicates a maximum jump length below 1.
	ErrBadJump = errors.New("shortcut: max jump length must be at least 1")

	// ErrIncompleteField indicates a field solved WithStopAtGoal or pruned by
	// WithGoal, which lacks the costs of some reachable cells.
	ErrIncompleteField = errors.New("shortcut: field does not cover every reachable cell")
)

// Shortcut is one directed jump from From to To.
// Length is the Manhattan distance of the jump; Saving is how much cheaper
// reaching To becomes when the jump replaces the walked route.
type Shortcut struct {
	From, To gridgraph.Point
	Length   int64
	Saving   int64
}

// Histogram maps each positive saving to the number of (From, To) pairs
// achieving it.
type Histogram map[int64]int

// AtLeast sums the counts of every saving ≥ threshold.
func (h Histogram) AtLeast(threshold int64) int {
	n := 0
	for saving, count := range h {
		if saving >= threshold {
			n += count
		}
	}
	return n
}

// Total returns the number of shortcut pairs in the histogram.
func (h Histogram) Total() int {
	return h.AtLeast(1)
}

// Savings returns the distinct saving amounts in ascending order.
func (h Histogram) Savings() []int64 {
	out := make([]int64, 0, len(h))
	for saving := range h {
		out = append(out, saving)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
