// Package dijkstra defines the state, configuration options and sentinel
// errors for the grid state-space shortest-path solver.
//
// A state is a cell, optionally paired with the heading the walker faces.
// Moving one cell costs 1; in directional mode every quarter turn between the
// current heading and the move's heading adds TurnPenalty.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Inf is the distance recorded for states the search never reached.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by Solve and Field accessors.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start point lies outside the grid.
	// A start on a blocked cell is not an error: it yields an all-Inf field.
	ErrStartOutOfBounds = errors.New("dijkstra: start point out of bounds")

	// ErrGoalOutOfBounds indicates a goal point lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal point out of bounds")

	// ErrNoGoal indicates WithStopAtGoal was requested without WithGoal.
	ErrNoGoal = errors.New("dijkstra: stop-at-goal requires a goal")

	// ErrBadTurnPenalty indicates a negative turn penalty.
	ErrBadTurnPenalty = errors.New("dijkstra: turn penalty must be non-negative")

	// ErrCostOverflow indicates an accumulated cost would no longer fit below Inf.
	ErrCostOverflow = errors.New("dijkstra: accumulated cost overflow")
)

// State is the unit of distance bookkeeping. In non-directional solves
// Heading is always North and carries no meaning.
type State struct {
	Pos     gridgraph.Point
	Heading gridgraph.Heading
}

func (s State) String() string {
	return fmt.Sprintf("(%v %v)", s.Pos, s.Heading)
}

// Options configures the behavior of Solve.
//
// Directional   – state is (position, heading) and turns cost TurnPenalty each.
// TurnPenalty   – cost per quarter turn; must be ≥ 0. Ignored unless Directional.
// StartHeading  – heading of the start state in directional mode.
// Goals         – cells whose arrival cost bounds exploration.
// StopAtGoal    – stop once the first goal state is settled.
// OnSettle      – called once per settled state with its final cost.
type Options struct {
	Directional  bool
	TurnPenalty  int64
	StartHeading gridgraph.Heading
	Goals        []gridgraph.Point
	StopAtGoal   bool
	OnSettle     func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the configuration used when no options are passed:
//   - non-directional, uniform step cost 1
//   - StartHeading East (only used once WithDirectional is applied)
//   - no goal, exhaustive search
//   - no-op OnSettle hook
func DefaultOptions() Options {
	return Options{
		Directional:  false,
		TurnPenalty:  0,
		StartHeading: gridgraph.East,
		OnSettle:     func(State, int64) {},
	}
}

// WithDirectional makes the heading part of the state.
func WithDirectional() Option {
	return func(o *Options) {
		o.Directional = true
	}
}

// WithTurnPenalty sets the cost charged per quarter turn.
// Negative values are recorded and surfaced as ErrBadTurnPenalty by Solve.
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadTurnPenalty, p)
			return
		}
		o.TurnPenalty = p
	}
}

// WithStartHeading sets the heading the walker faces at the start.
func WithStartHeading(h gridgraph.Heading) Option {
	return func(o *Options) {
		o.StartHeading = h & 3
	}
}

// WithGoal adds a goal cell. Once any goal state has a known cost, popped
// nodes costing more are discarded without expansion.
func WithGoal(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Goals = append(o.Goals, p)
	}
}

// WithStopAtGoal ends the search as soon as a goal state is settled.
// States not yet settled at that point hold Inf, and Field.Stopped is true.
func WithStopAtGoal() Option {
	return func(o *Options) {
		o.StopAtGoal = true
	}
}

// WithOnSettle registers a callback run once per settled state.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
