package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice where
// rows[y][x] reports whether cell (x,y) is passable.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([]bool, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// FromStrings builds a Grid from text rows where '#' marks a blocked cell
// and any other byte a passable one.
func FromStrings(rows []string) (*Grid, error) {
	bools := make([][]bool, len(rows))
	for y, row := range rows {
		bools[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			bools[y][x] = row[x] != '#'
		}
	}
	return NewGrid(bools)
}

// Open returns a w×h grid with every cell passable.
func Open(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = true
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.Width, g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Passable reports whether p is inside the grid and not blocked.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p.X, p.Y) && g.cells[g.index(p.X, p.Y)]
}

// Neighbors returns the passable orthogonal neighbours of p in N, E, S, W order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, h := range Headings {
		if q := p.Add(h.Delta()); g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, ok := range g.cells {
		if ok {
			n++
		}
	}
	return n
}

// WithBlocked returns a copy of g with every point in blocked marked
// impassable. Points already blocked are ignored; an out-of-bounds point
// yields ErrOutOfBounds and no grid.
func (g *Grid) WithBlocked(blocked ...Point) (*Grid, error) {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	for _, p := range blocked {
		if !g.Contains(p) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
		}
		cells[g.index(p.X, p.Y)] = false
	}

	return &Grid{Width: g.Width, Height: g.Height, cells: cells}, nil
}

// String renders the grid with '.' for passable and '#' for blocked cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[g.index(x, y)] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Index maps p to its row-major index: y*Width + x.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// index maps (x,y) to a row-major index.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
