// Package maze parses the line-oriented text formats the gridpath drivers
// read: character maps with start and end markers, and "x,y" obstacle lists.
package maze

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Map bytes.
const (
	Wall  = '#'
	Open  = '.'
	Start = 'S'
	End   = 'E'
)

// Sentinel errors for parsing.
var (
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("maze: no start marker")
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = errors.New("maze: no end marker")
	// ErrDuplicateMarker indicates a second 'S' or 'E'.
	ErrDuplicateMarker = errors.New("maze: marker appears more than once")
	// ErrUnexpectedByte indicates a map byte other than '#', '.', 'S' or 'E'.
	ErrUnexpectedByte = errors.New("maze: unexpected byte on map")
	// ErrBadDrop indicates an obstacle line that is not "x,y".
	ErrBadDrop = errors.New("maze: malformed obstacle line")
)

// Maze is a parsed map: its passability grid and the two markers.
type Maze struct {
	Grid  *gridgraph.Grid
	Start gridgraph.Point
	End   gridgraph.Point
}

// Parse reads a map from r. Markers count as passable cells. Trailing
// carriage returns and blank lines after the map are ignored.
func Parse(r io.Reader) (*Maze, error) {
	var (
		rows               [][]bool
		start, end         gridgraph.Point
		haveStart, haveEnd bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), 1<<20)
	for y := 0; sc.Scan(); y++ {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			// Blank lines are only allowed after the map.
			if err := trailingBlank(sc); err != nil {
				return nil, fmt.Errorf("maze: line %d: %w", y+1, err)
			}
			break
		}

		row := make([]bool, len(line))
		for x, b := range line {
			switch b {
			case Wall:
			case Open:
				row[x] = true
			case Start, End:
				row[x] = true
				seen, at := &haveStart, &start
				if b == End {
					seen, at = &haveEnd, &end
				}
				if *seen {
					return nil, fmt.Errorf("%w: %q at line %d col %d", ErrDuplicateMarker, b, y+1, x+1)
				}
				*seen, *at = true, gridgraph.Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrUnexpectedByte, b, y+1, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return &Maze{Grid: g, Start: start, End: end}, nil
}

// trailingBlank consumes the rest of sc and fails if any non-blank line follows.
func trailingBlank(sc *bufio.Scanner) error {
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) != 0 {
			return errors.New("blank line inside map")
		}
	}
	return nil
}

// ParseDrops reads one "x,y" obstacle coordinate per line. Blank lines are skipped.
func ParseDrops(r io.Reader) ([]gridgraph.Point, error) {
	var drops []gridgraph.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		xs, ys, ok := bytes.Cut(line, []byte{','})
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadDrop, n, line)
		}
		x, errX := strconv.Atoi(string(bytes.TrimSpace(xs)))
		y, errY := strconv.Atoi(string(bytes.TrimSpace(ys)))
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadDrop, n, err)
		}
		drops = append(drops, gridgraph.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	return drops, nil
}
