package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// Field is the distance field produced by one Solve: the minimum cost from
// the start state to every state, or Inf where no cost was finalized.
// A Field is frozen once Solve returns; every method is a read, so a Field
// may be shared by any number of readers.
type Field struct {
	grid        *gridgraph.Grid
	start       State
	directional bool
	turnPenalty int64
	headings    int     // 4 when directional, else 1
	dist        []int64 // indexed (y*W + x)*headings + heading
	stopped     bool    // search ended at the first settled goal
	pruned      bool    // goal pruning left reached states unsettled
}

// newField allocates an all-Inf field for g under cfg.
func newField(g *gridgraph.Grid, start gridgraph.Point, cfg Options) *Field {
	f := &Field{
		grid:        g,
		directional: cfg.Directional,
		turnPenalty: cfg.TurnPenalty,
		headings:    1,
	}
	f.start = State{Pos: start}
	if cfg.Directional {
		f.headings = 4
		f.start.Heading = cfg.StartHeading
	}
	f.dist = make([]int64, g.Width*g.Height*f.headings)
	for i := range f.dist {
		f.dist[i] = Inf
	}
	return f
}

// index maps s to its slot in dist. The caller must ensure s.Pos is in bounds.
func (f *Field) index(s State) int {
	i := f.grid.Index(s.Pos) * f.headings
	if f.directional {
		i += int(s.Heading & 3)
	}
	return i
}

// state is the inverse of index.
func (f *Field) state(i int) State {
	s := State{Pos: f.grid.Coordinate(i / f.headings)}
	if f.directional {
		s.Heading = gridgraph.Heading(i % f.headings)
	}
	return s
}

// Grid returns the grid the field was computed on.
func (f *Field) Grid() *gridgraph.Grid { return f.grid }

// Start returns the start state.
func (f *Field) Start() State { return f.start }

// Directional reports whether headings are part of the state.
func (f *Field) Directional() bool { return f.directional }

// TurnPenalty returns the per-quarter-turn cost the field was solved with.
func (f *Field) TurnPenalty() int64 { return f.turnPenalty }

// HeadingCount returns 4 for directional fields and 1 otherwise.
func (f *Field) HeadingCount() int { return f.headings }

// Complete reports whether the field holds the minimum cost of every
// reachable state. It is false after WithStopAtGoal, and after WithGoal
// whenever pruning discarded a state costlier than the goal.
func (f *Field) Complete() bool { return !f.stopped && !f.pruned }

// Stopped reports whether the search ended at the first settled goal.
// A field that is only pruned still holds exact costs up to the goal cost.
func (f *Field) Stopped() bool { return f.stopped }

// Dist returns the minimum cost of s, or Inf if s is out of bounds or unreached.
// For non-directional fields the heading of s is ignored.
func (f *Field) Dist(s State) int64 {
	if !f.grid.Contains(s.Pos) {
		return Inf
	}
	return f.dist[f.index(s)]
}

// At returns the minimum cost over every heading variant of p.
func (f *Field) At(p gridgraph.Point) int64 {
	if !f.grid.Contains(p) {
		return Inf
	}
	base := f.grid.Index(p) * f.headings
	best := Inf
	for _, d := range f.dist[base : base+f.headings] {
		if d < best {
			best = d
		}
	}
	return best
}

// Reachable reports whether any state of p has a finite cost.
func (f *Field) Reachable(p gridgraph.Point) bool {
	return f.At(p) < Inf
}

// Reached returns the number of states with a finite cost.
func (f *Field) Reached() int {
	n := 0
	for _, d := range f.dist {
		if d < Inf {
			n++
		}
	}
	return n
}

// States returns every state of p: the four headings for directional fields,
// a single heading-less state otherwise.
func (f *Field) States(p gridgraph.Point) []State {
	if !f.directional {
		return []State{{Pos: p}}
	}
	out := make([]State, 4)
	for i, h := range gridgraph.Headings {
		out[i] = State{Pos: p, Heading: h}
	}
	return out
}

// Cost returns the cost of the single move from → to, and false when to is
// not one orthogonal step from from, is blocked, or (directional) does not
// face the direction of the move.
func (f *Field) Cost(from, to State) (int64, bool) {
	if !f.grid.Passable(to.Pos) {
		return 0, false
	}
	if !f.directional {
		if from.Pos.Manhattan(to.Pos) != 1 {
			return 0, false
		}
		return 1, true
	}
	if from.Pos.Add(to.Heading.Delta()) != to.Pos {
		return 0, false
	}
	return f.stepCost(from.Heading, to.Heading)
}

// stepCost is 1 plus TurnPenalty per quarter turn from cur to next.
// The second result is false if the product overflows.
func (f *Field) stepCost(cur, next gridgraph.Heading) (int64, bool) {
	if !f.directional {
		return 1, true
	}
	turns := int64(cur.Diff(next))
	if turns == 0 || f.turnPenalty == 0 {
		return 1, true
	}
	if f.turnPenalty > (Inf-2)/turns {
		return 0, false
	}
	return 1 + f.turnPenalty*turns, true
}

// addCost returns a+b, or false when the sum would reach Inf.
func addCost(a, b int64) (int64, bool) {
	if b >= Inf-a {
		return 0, false
	}
	return a + b, true
}
