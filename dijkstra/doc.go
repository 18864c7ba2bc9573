// Package dijkstra provides a shortest-path solver over the states of a
// gridgraph.Grid, producing a full distance field for later analysis.
//
// Overview:
//
//   - A state is a cell, or a (cell, heading) pair when WithDirectional is set.
//   - Every orthogonal move costs 1. In directional mode each quarter turn
//     between the current heading and the move adds WithTurnPenalty; a reversal
//     counts as two quarter turns.
//   - Solve returns a *Field holding the exact minimum cost of every settled
//     state and Inf everywhere else.
//
// When to use:
//
//   - Maze costs with turn penalties (a reindeer walking a maze).
//   - As the single precomputation behind pathset.OptimalTiles and
//     shortcut.Enumerate, which both only read the field.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithGoal: once a goal cost is known, costlier frontier entries are dropped.
//   - WithStopAtGoal: single-answer queries end at the first settled goal.
//   - WithOnSettle: observe the settle order (costs are non-decreasing).
//
// Performance and complexity:
//
//   - Time:  O(S log S) where S = W×H×(4 or 1).
//   - Space: O(S) for the distance and settled tables, plus the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          nil grid.
//   - ErrStartOutOfBounds: start outside the grid (a caller bug, unlike an unreachable goal).
//   - ErrGoalOutOfBounds:  a goal outside the grid.
//   - ErrNoGoal:           WithStopAtGoal without WithGoal.
//   - ErrBadTurnPenalty:   negative turn penalty.
//   - ErrCostOverflow:     accumulated cost would reach Inf.
//
// Unreachable states are not errors; callers compare against Inf.
//
// Thread safety:
//
//   - Solve allocates all of its state per call; concurrent Solve calls on the
//     same immutable Grid are safe. A returned Field is read-only.
package dijkstra
