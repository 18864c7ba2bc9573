package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Solve computes minimum costs from start to every reachable state of g.
// It accepts functional options to customize behavior (WithDirectional,
// WithTurnPenalty, WithGoal, WithStopAtGoal, etc.).
//
// Returns:
//
//   - field: the distance field. States never settled hold Inf.
//   - err:   error if inputs or options are invalid, or a cost overflowed.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadTurnPenalty).
//  2. g must be non-nil (ErrNilGrid).
//  3. start must lie inside g (ErrStartOutOfBounds).
//  4. every goal must lie inside g (ErrGoalOutOfBounds).
//  5. WithStopAtGoal needs at least one goal (ErrNoGoal).
//
// A start on a blocked cell is not an error: the returned field is all Inf.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×(4 or 1) states, each with at most 4 moves.
//   - Space: O(S)
func Solve(g *gridgraph.Grid, start gridgraph.Point, opts ...Option) (*Field, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Width, g.Height)
	}
	isGoal := make([]bool, g.Width*g.Height)
	for _, p := range cfg.Goals {
		if !g.Contains(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrGoalOutOfBounds, p, g.Width, g.Height)
		}
		isGoal[g.Index(p)] = true
	}
	if cfg.StopAtGoal && len(cfg.Goals) == 0 {
		return nil, ErrNoGoal
	}

	f := newField(g, start, cfg)
	if !g.Passable(start) {
		return f, nil
	}

	// 3) Run
	r := &runner{
		field:    f,
		options:  cfg,
		settled:  make([]bool, len(f.dist)),
		isGoal:   isGoal,
		pq:       make(nodePQ, 0, g.Width+g.Height),
		bestGoal: Inf,
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.finalize()

	return f, nil
}

// runner holds the mutable state for a single Solve.
type runner struct {
	field    *Field  // written only by this runner, frozen afterwards
	options  Options // configuration (turns, goals, hooks)
	settled  []bool  // same indexing as field.dist; write-once per state
	isGoal   []bool  // indexed by cell
	pq       nodePQ  // min-heap of *nodeItem for lazy priority queue
	bestGoal int64   // cheapest settled goal cost so far
}

// init sets the start cost to zero and pushes it into the heap.
func (r *runner) init() {
	i := r.field.index(r.field.start)
	r.field.dist[i] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: i, cost: 0})
}

// process is the core loop. It repeatedly extracts the cheapest frontier
// entry and relaxes the moves out of its state.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed or pruned).
//   - StopAtGoal is set and a goal state was just settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Nothing costlier than the best goal can lie on an optimal route.
		if item.cost > r.bestGoal {
			continue
		}
		// Stale duplicate of a finalized state.
		if r.settled[item.idx] {
			continue
		}
		r.settled[item.idx] = true

		s := r.field.state(item.idx)
		r.options.OnSettle(s, item.cost)

		if r.isGoal[r.field.grid.Index(s.Pos)] {
			if item.cost < r.bestGoal {
				r.bestGoal = item.cost
			}
			if r.options.StopAtGoal {
				r.field.stopped = true
				return nil
			}
		}

		if err := r.relax(s, item.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax tries each of the four moves out of s. A neighbour whose candidate
// cost is strictly lower than its recorded one is updated and pushed.
func (r *runner) relax(s State, cost int64) error {
	f := r.field
	for _, h := range gridgraph.Headings {
		next := State{Pos: s.Pos.Add(h.Delta())}
		if !f.grid.Passable(next.Pos) {
			continue
		}
		if f.directional {
			next.Heading = h
		}

		step, ok := f.stepCost(s.Heading, h)
		if !ok {
			return fmt.Errorf("%w: turn from %v to %v at %v", ErrCostOverflow, s.Heading, h, s.Pos)
		}
		newCost, ok := addCost(cost, step)
		if !ok {
			return fmt.Errorf("%w: stepping %v → %v", ErrCostOverflow, s, next)
		}

		j := f.index(next)
		if r.settled[j] || newCost >= f.dist[j] {
			continue
		}
		f.dist[j] = newCost
		heap.Push(&r.pq, &nodeItem{idx: j, cost: newCost})
	}

	return nil
}

// finalize drops tentative costs of states that were reached but never
// settled, so that every finite entry of the field is exact. Without an
// early stop such states exist only because goal pruning discarded them.
func (r *runner) finalize() {
	for i, ok := range r.settled {
		if ok {
			continue
		}
		if r.field.dist[i] != Inf && !r.field.stopped {
			r.field.pruned = true
		}
		r.field.dist[i] = Inf
	}
}

// nodeItem is a frontier entry: a state slot and the cost it was pushed with.
type nodeItem struct {
	idx  int   // slot in Field.dist
	cost int64 // accumulated cost from the start
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
