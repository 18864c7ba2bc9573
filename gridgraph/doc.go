// Package gridgraph models a rectangular grid of passable and blocked cells
// as the state space for the gridpath solvers.
//
// What:
//
//   - Grid wraps a rectangular passability field; it is immutable once built.
//   - Point and Heading give coordinates and the four cardinal moves.
//   - Identifies connected regions of passable cells (4-connectivity).
//
// Why:
//
//   - Maze solving: every solver reads adjacency through Passable and Neighbors.
//   - Diagnostics: SameRegion tells "unreachable" apart before any search runs.
//   - Obstacle replay: WithBlocked derives a new grid without mutating the old one.
//
// Complexity:
//
//   - NewGrid, WithBlocked:  O(W×H), Memory: O(W×H).
//   - Passable, InBounds:    O(1).
//   - ConnectedComponents:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point outside the grid was passed to WithBlocked.
package gridgraph
