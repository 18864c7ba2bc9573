// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotPassable is returned when the start cell is blocked or outside the grid.
	ErrStartNotPassable = errors.New("bfs: start cell not passable")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(p gridgraph.Point, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p gridgraph.Point, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each move curr→neighbor between passable cells.
	FilterNeighbor func(curr, neighbor gridgraph.Point) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Point, int) {},
		OnDequeue:      func(gridgraph.Point, int) {},
		OnVisit:        func(gridgraph.Point, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ gridgraph.Point) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []gridgraph.Point
	Depth  map[gridgraph.Point]int
	Parent map[gridgraph.Point]gridgraph.Point
}

// Reached reports whether p was enqueued by the traversal.
func (r *BFSResult) Reached(p gridgraph.Point) bool {
	_, ok := r.Depth[p]
	return ok
}

// PathTo reconstructs the path from the start cell to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []gridgraph.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
