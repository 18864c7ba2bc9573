package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid was supplied where a cell was required.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)
