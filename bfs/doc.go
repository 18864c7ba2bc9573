// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning uniform-cost shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore passable cells in non-decreasing step count from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Uniform-cost reachability in O(W·H), cheaper than dijkstra.Solve when
//     every step costs 1 and only "can we get there" matters.
//   - An independent oracle for the weighted solver on plain grids.
//
// Determinism
//
//	Neighbours are enqueued in N, E, S, W order, so the visit sequence is
//	fully reproducible.
//
// Complexity (C = W·H cells)
//
//   - Time:   O(C)   (each cell and move seen at most once)
//   - Memory: O(C)   (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(p gridgraph.Point, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - ErrStartNotPassable     if the start cell is blocked or out of bounds.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or the context error.
package bfs
