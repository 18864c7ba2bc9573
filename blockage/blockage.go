// Package blockage replays a sequence of falling obstacles onto a grid and
// finds the first one that cuts the start off from the goal.
package blockage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrNeverBlocked indicates the goal stays reachable after every drop.
	ErrNeverBlocked = errors.New("blockage: goal stays reachable after all drops")
	// ErrAlreadyBlocked indicates the goal is unreachable before any drop.
	ErrAlreadyBlocked = errors.New("blockage: goal unreachable before any drop")
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("blockage: grid is nil")
	// ErrNegativeCount indicates a negative number of fallen drops.
	ErrNegativeCount = errors.New("blockage: drop count must not be negative")

	errGoalFound = errors.New("blockage: goal found")
)

// Apply returns g with the first n drops blocked. n larger than the number
// of drops blocks all of them.
func Apply(g *gridgraph.Grid, drops []gridgraph.Point, n int) (*gridgraph.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, n)
	}
	if n > len(drops) {
		n = len(drops)
	}
	return g.WithBlocked(drops[:n]...)
}

// Reachable reports whether goal can be reached from start on g.
// A blocked start or goal is simply unreachable.
func Reachable(g *gridgraph.Grid, start, goal gridgraph.Point) (bool, error) {
	return reachable(context.Background(), g, start, goal)
}

func reachable(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Point) (bool, error) {
	if g == nil {
		return false, ErrNilGrid
	}
	if !g.Passable(start) || !g.Passable(goal) {
		return false, nil
	}
	_, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithOnVisit(func(p gridgraph.Point, _ int) error {
		if p == goal {
			return errGoalFound
		}
		return nil
	}))
	if errors.Is(err, errGoalFound) {
		return true, nil
	}
	return false, err
}

// FirstBlocking returns the index into drops of the obstacle after which goal
// can no longer be reached from start.
//
// Reachability only ever shrinks as obstacles accumulate, so the prefix
// length is found by binary search: O(log D) traversals instead of D.
func FirstBlocking(g *gridgraph.Grid, start, goal gridgraph.Point, drops []gridgraph.Point) (int, error) {
	return FirstBlockingContext(context.Background(), g, start, goal, drops)
}

// FirstBlockingContext is FirstBlocking with cancellation: every traversal
// checks ctx, and its error is returned once ctx is done.
func FirstBlockingContext(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Point, drops []gridgraph.Point) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	for i, p := range drops {
		if !g.Contains(p) {
			return 0, fmt.Errorf("blockage: drop %d: %w", i, gridgraph.ErrOutOfBounds)
		}
	}
	ok, err := reachable(ctx, g, start, goal)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrAlreadyBlocked
	}

	var searchErr error
	// n is the smallest prefix length that blocks the goal.
	n := sort.Search(len(drops)+1, func(n int) bool {
		if searchErr != nil {
			return true
		}
		blocked, err := Apply(g, drops, n)
		if err != nil {
			searchErr = err
			return true
		}
		reach, err := reachable(ctx, blocked, start, goal)
		if err != nil {
			searchErr = err
			return true
		}
		return !reach
	})
	if searchErr != nil {
		return 0, searchErr
	}
	if n > len(drops) {
		return 0, ErrNeverBlocked
	}
	return n - 1, nil
}
