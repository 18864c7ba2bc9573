// Package gridgraph defines the immutable passability grid, points and
// headings used by every solver in github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Point is a cell coordinate. X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "x,y", the same form drop lists use.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Heading is one of the four cardinal directions. The numeric order matters:
// adjacent values are a quarter turn apart.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in index order.
var Headings = [4]Heading{North, East, South, West}

var headingDelta = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit step taken when moving in h.
func (h Heading) Delta() Point {
	return headingDelta[h&3]
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	return (h + 2) & 3
}

// Diff counts the quarter turns between h and o: 0 for the same heading,
// 1 for perpendicular, 2 for opposite.
func (h Heading) Diff(o Heading) int {
	d := int(h&3) - int(o&3)
	if d < 0 {
		d = -d
	}
	if d == 3 {
		return 1
	}
	return d
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Grid is a rectangular field of passable and blocked cells. It is immutable
// once built; every method is a pure read.
type Grid struct {
	Width, Height int
	cells         []bool // row-major, true = passable
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
