// Package pathset answers questions about every minimum-cost route in a
// dijkstra.Field: which tiles lie on any optimal path, which predecessor
// states achieve a state's cost, and one concrete optimal path.
//
// Nothing here runs a search. Every query reads a finished Field and uses
// the identity dist[p] + cost(p, s) == dist[s] to recognise optimal moves.
package pathset

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BestCost returns the minimum cost over every heading variant of goal,
// or dijkstra.Inf if goal is unreachable.
func BestCost(f *dijkstra.Field, goal gridgraph.Point) (int64, error) {
	if err := check(f, goal); err != nil {
		return 0, err
	}
	return f.At(goal), nil
}

// Predecessors returns the predecessor multiset of s: every state p with a
// finite cost such that dist[p] + cost(p, s) == dist[s]. More than one
// entry means several optimal routes merge at s. The start state has none,
// and so does every state of a nil field.
func Predecessors(f *dijkstra.Field, s dijkstra.State) []dijkstra.State {
	if f == nil {
		return nil
	}
	d := f.Dist(s)
	if d == dijkstra.Inf {
		return nil
	}

	var candidates []dijkstra.State
	if f.Directional() {
		from := s.Pos.Add(s.Heading.Reverse().Delta())
		candidates = f.States(from)
	} else {
		for _, q := range f.Grid().Neighbors(s.Pos) {
			candidates = append(candidates, dijkstra.State{Pos: q})
		}
	}

	var out []dijkstra.State
	for _, p := range candidates {
		dp := f.Dist(p)
		if dp == dijkstra.Inf {
			continue
		}
		c, ok := f.Cost(p, s)
		if ok && c <= d && dp == d-c {
			out = append(out, p)
		}
	}
	return out
}

// OptimalStates returns every state that lies on at least one minimum-cost
// path from the start to goal, in discovery order from the goal backwards.
// The walk is guarded by a set keyed by state, not position, so a cell
// entered under several headings is expanded once per heading and never
// loops. Returns an empty slice when goal is unreachable, and
// ErrIncompleteField for fields solved WithStopAtGoal.
func OptimalStates(f *dijkstra.Field, goal gridgraph.Point) ([]dijkstra.State, error) {
	if err := check(f, goal); err != nil {
		return nil, err
	}
	if f.Stopped() {
		return nil, ErrIncompleteField
	}
	best := f.At(goal)
	if best == dijkstra.Inf {
		return []dijkstra.State{}, nil
	}

	seen := make(map[dijkstra.State]struct{})
	var stack []dijkstra.State
	for _, s := range f.States(goal) {
		if f.Dist(s) == best {
			seen[s] = struct{}{}
			stack = append(stack, s)
		}
	}

	out := make([]dijkstra.State, 0, len(stack))
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s)

		for _, p := range Predecessors(f, s) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			stack = append(stack, p)
		}
	}
	return out, nil
}

// OptimalTiles returns the distinct positions of OptimalStates, unioned
// with goal and the start position. It is empty when goal is unreachable.
func OptimalTiles(f *dijkstra.Field, goal gridgraph.Point) (TileSet, error) {
	states, err := OptimalStates(f, goal)
	if err != nil {
		return nil, err
	}
	tiles := make(TileSet, len(states))
	if len(states) == 0 {
		return tiles, nil
	}
	for _, s := range states {
		tiles.add(s.Pos)
	}
	tiles.add(goal)
	tiles.add(f.Start().Pos)

	return tiles, nil
}

// BestPath reconstructs one minimum-cost path from the start to goal,
// start first. Ties are broken towards the lowest heading index and the
// first predecessor in N, E, S, W order.
func BestPath(f *dijkstra.Field, goal gridgraph.Point) ([]dijkstra.State, error) {
	if err := check(f, goal); err != nil {
		return nil, err
	}
	best := f.At(goal)
	if best == dijkstra.Inf {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}

	var cur dijkstra.State
	for _, s := range f.States(goal) {
		if f.Dist(s) == best {
			cur = s
			break
		}
	}

	path := []dijkstra.State{cur}
	for f.Dist(cur) > 0 {
		preds := Predecessors(f, cur)
		if len(preds) == 0 {
			// A finite non-zero cost always has a predecessor in a finished field.
			return nil, fmt.Errorf("pathset: broken predecessor chain at %v", cur)
		}
		cur = preds[0]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func check(f *dijkstra.Field, goal gridgraph.Point) error {
	if f == nil {
		return ErrNilField
	}
	if !f.Grid().Contains(goal) {
		return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	return nil
}
