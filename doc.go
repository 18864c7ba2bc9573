// Package gridpath is a shortest-path engine for rectangular grids of
// passable and blocked cells.
//
// 🚀 What is gridpath?
//
//	A small, zero-surprise library that brings together:
//		• Grid model: immutable passability grids, points, headings, regions
//		• Dijkstra over (cell[, heading]) states with quarter-turn penalties
//		• Optimal tiles: every cell on at least one cheapest route
//		• Shortcuts: Manhattan jumps that beat the walked route, as a histogram
//		• BFS with hooks, blockage search over falling obstacles
//		• A tcell renderer and a CLI to drive it all from text maps
//
// ✨ Why choose gridpath?
//
//   - One solve, many answers: shortcuts and optimal tiles read a frozen Field
//   - Deterministic: identical inputs yield identical fields and listings
//   - Extensible: functional options and hooks (OnSettle, OnVisit…)
//
// Packages:
//
//	gridgraph/     Grid, Point, Heading, bounds and adjacency, connected regions
//	dijkstra/      state-space solver producing a dijkstra.Field
//	pathset/       optimal tile set, predecessors, one concrete best path
//	shortcut/      jump-savings histogram and listing over a Field
//	bfs/           uniform-cost breadth-first search with hooks
//	maze/          parsers for S/E maps and x,y obstacle lists
//	blockage/      first obstacle that separates start from goal
//	view/          terminal rendering on tcell
//	cmd/gridpath/  route, shortcuts and bytes subcommands
//
// Quick ASCII example (S start, E end, O optimal tiles):
//
//	SOOOO
//	O###O
//	OOOOE
//
// Both ways round the wall cost 6, so every open cell is an optimal tile.
// With a quarter-turn penalty of 1000 and the start facing East, only the
// top route survives: cost 1006.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
