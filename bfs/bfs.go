// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning uniform-cost shortest-path depths, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     gridgraph.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartNotPassable for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start gridgraph.Point, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotPassable, start)
	}

	n := g.PassableCount()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, g.Width*g.Height),
		res: &BFSResult{
			Order:  make([]gridgraph.Point, 0, n),
			Depth:  make(map[gridgraph.Point]int, n),
			Parent: make(map[gridgraph.Point]gridgraph.Point, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Point, d int, parent *gridgraph.Point) {
	w.visited[w.grid.Index(p)] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to the passable
// neighbours of item and enqueues each unseen one.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.p) {
		if !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[w.grid.Index(nbr)] {
			parent := item.p
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
