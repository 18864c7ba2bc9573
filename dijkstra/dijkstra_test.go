// Package dijkstra_test validates Solve on hand-built grids: the reference
// scenarios, option validation, goal pruning, and agreement with independent
// brute-force oracles.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type pt = gridgraph.Point

func mustGrid(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

// ValidationSuite checks every precondition Solve enforces.
type ValidationSuite struct {
	suite.Suite
	g *gridgraph.Grid
}

func (s *ValidationSuite) SetupTest() {
	s.g = mustGrid(s.T(), "...", "...")
}

func (s *ValidationSuite) TestNilGrid() {
	_, err := dijkstra.Solve(nil, pt{})
	require.ErrorIs(s.T(), err, dijkstra.ErrNilGrid)
}

func (s *ValidationSuite) TestStartOutOfBounds() {
	_, err := dijkstra.Solve(s.g, pt{X: 3, Y: 0})
	require.ErrorIs(s.T(), err, dijkstra.ErrStartOutOfBounds)
	_, err = dijkstra.Solve(s.g, pt{X: 0, Y: -1})
	require.ErrorIs(s.T(), err, dijkstra.ErrStartOutOfBounds)
}

func (s *ValidationSuite) TestGoalOutOfBounds() {
	_, err := dijkstra.Solve(s.g, pt{}, dijkstra.WithGoal(pt{X: 0, Y: 2}))
	require.ErrorIs(s.T(), err, dijkstra.ErrGoalOutOfBounds)
}

func (s *ValidationSuite) TestStopWithoutGoal() {
	_, err := dijkstra.Solve(s.g, pt{}, dijkstra.WithStopAtGoal())
	require.ErrorIs(s.T(), err, dijkstra.ErrNoGoal)
}

func (s *ValidationSuite) TestNegativePenalty() {
	_, err := dijkstra.Solve(s.g, pt{}, dijkstra.WithDirectional(), dijkstra.WithTurnPenalty(-1))
	require.ErrorIs(s.T(), err, dijkstra.ErrBadTurnPenalty)
}

func (s *ValidationSuite) TestBlockedStartIsEmptyField() {
	g := mustGrid(s.T(), "#..")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, f.Reached())
	require.Equal(s.T(), dijkstra.Inf, f.At(pt{X: 2, Y: 0}))
}

func (s *ValidationSuite) TestOverflowIsReported() {
	g := mustGrid(s.T(), "..", "..")
	_, err := dijkstra.Solve(g, pt{}, dijkstra.WithDirectional(), dijkstra.WithTurnPenalty(dijkstra.Inf/2))
	require.ErrorIs(s.T(), err, dijkstra.ErrCostOverflow)
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

// Scenario 1: open 3×3 grid, uniform cost.
func TestSolve_OpenGrid(t *testing.T) {
	g := mustGrid(t, "...", "...", "...")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, int64(4), f.At(pt{X: 2, Y: 2}))
	require.Equal(t, int64(0), f.At(pt{X: 0, Y: 0}))
	require.Equal(t, 9, f.Reached())
	require.True(t, f.Complete())
}

// Scenario 2: a single centre wall is routed around; walls at (1,0) and
// (0,1) seal the start in.
func TestSolve_Walls(t *testing.T) {
	g := mustGrid(t, "...", ".#.", "...")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, int64(4), f.At(pt{X: 2, Y: 2}))
	require.Equal(t, dijkstra.Inf, f.At(pt{X: 1, Y: 1}))

	sealed := mustGrid(t, ".#.", "#..", "...")
	f, err = dijkstra.Solve(sealed, pt{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, dijkstra.Inf, f.At(pt{X: 2, Y: 2}))
	require.False(t, f.Reachable(pt{X: 2, Y: 2}))
	require.Equal(t, 1, f.Reached())
}

// Scenario 3: a 2×1 corridor where the walker faces east and must go west.
// The only move is a reversal: 1 step + 2×1000.
func TestSolve_Reversal(t *testing.T) {
	g := mustGrid(t, "..")
	f, err := dijkstra.Solve(g, pt{X: 1, Y: 0},
		dijkstra.WithDirectional(),
		dijkstra.WithTurnPenalty(1000),
		dijkstra.WithStartHeading(gridgraph.East),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2001), f.At(pt{X: 0, Y: 0}))
	require.Equal(t, int64(2001), f.Dist(dijkstra.State{Pos: pt{X: 0, Y: 0}, Heading: gridgraph.West}))
	require.Equal(t, dijkstra.Inf, f.Dist(dijkstra.State{Pos: pt{X: 0, Y: 0}, Heading: gridgraph.East}))
}

// TestSolve_TurnCosts walks an L-shaped corridor: three straight steps,
// one quarter turn, two more steps.
//
//	....
//	###.
//	###.
func TestSolve_TurnCosts(t *testing.T) {
	g := mustGrid(t, "....", "###.", "###.")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0}, dijkstra.WithDirectional(), dijkstra.WithTurnPenalty(1000))
	require.NoError(t, err)
	require.Equal(t, int64(3), f.At(pt{X: 3, Y: 0}))
	require.Equal(t, int64(1005), f.At(pt{X: 3, Y: 2}))
	require.Equal(t, 4, f.HeadingCount())
	require.Equal(t, int64(1000), f.TurnPenalty())
}

// TestSolve_ReferenceMaze is the classic 15×15 turn-penalty maze whose best
// score is 7036.
func TestSolve_ReferenceMaze(t *testing.T) {
	g, start, end := referenceMaze(t)
	f, err := dijkstra.Solve(g, start,
		dijkstra.WithDirectional(),
		dijkstra.WithTurnPenalty(1000),
		dijkstra.WithGoal(end),
	)
	require.NoError(t, err)
	require.Equal(t, int64(7036), f.At(end))
}

// ------------------------------------------------------------------------
// 3. Goal handling
// ------------------------------------------------------------------------

// TestSolve_GoalPruning checks that pruning keeps the goal exact and
// leaves costlier states unfinalized.
func TestSolve_GoalPruning(t *testing.T) {
	g := mustGrid(t, ".....", ".....")
	full, err := dijkstra.Solve(g, pt{X: 0, Y: 0})
	require.NoError(t, err)
	pruned, err := dijkstra.Solve(g, pt{X: 0, Y: 0}, dijkstra.WithGoal(pt{X: 1, Y: 0}))
	require.NoError(t, err)

	require.Equal(t, full.At(pt{X: 1, Y: 0}), pruned.At(pt{X: 1, Y: 0}))
	require.Equal(t, dijkstra.Inf, pruned.At(pt{X: 4, Y: 1}))
	require.Less(t, pruned.Reached(), full.Reached())
	require.True(t, full.Complete())
	require.False(t, pruned.Complete())
	require.False(t, pruned.Stopped())
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if d := pruned.At(pt{X: x, Y: y}); d != dijkstra.Inf {
				require.Equal(t, full.At(pt{X: x, Y: y}), d)
			}
		}
	}
}

// TestSolve_GoalWithoutPruning: a goal at the far end of a corridor settles
// every cell before anything costlier is popped.
func TestSolve_GoalWithoutPruning(t *testing.T) {
	g := mustGrid(t, "....")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0}, dijkstra.WithGoal(pt{X: 3, Y: 0}))
	require.NoError(t, err)
	require.True(t, f.Complete())
	require.False(t, f.Stopped())
	require.Equal(t, 4, f.Reached())
}

func TestSolve_StopAtGoal(t *testing.T) {
	g := mustGrid(t, "......")
	f, err := dijkstra.Solve(g, pt{X: 0, Y: 0}, dijkstra.WithGoal(pt{X: 2, Y: 0}), dijkstra.WithStopAtGoal())
	require.NoError(t, err)
	require.False(t, f.Complete())
	require.True(t, f.Stopped())
	require.Equal(t, int64(2), f.At(pt{X: 2, Y: 0}))
	require.Equal(t, dijkstra.Inf, f.At(pt{X: 3, Y: 0}))
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestSolve_Deterministic runs the same solve twice.
func TestSolve_Deterministic(t *testing.T) {
	g, start, _ := referenceMaze(t)
	opts := []dijkstra.Option{dijkstra.WithDirectional(), dijkstra.WithTurnPenalty(1000)}
	a, err := dijkstra.Solve(g, start, opts...)
	require.NoError(t, err)
	b, err := dijkstra.Solve(g, start, opts...)
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, s := range a.States(pt{X: x, Y: y}) {
				require.Equal(t, a.Dist(s), b.Dist(s), "state %v", s)
			}
		}
	}
}

// TestSolve_SettleOrder checks that settled costs never decrease and no
// state is settled twice.
func TestSolve_SettleOrder(t *testing.T) {
	g, start, _ := referenceMaze(t)
	seen := map[dijkstra.State]int64{}
	last := int64(-1)
	f, err := dijkstra.Solve(g, start,
		dijkstra.WithDirectional(),
		dijkstra.WithTurnPenalty(1000),
		dijkstra.WithOnSettle(func(s dijkstra.State, cost int64) {
			_, dup := seen[s]
			require.False(t, dup, "state %v settled twice", s)
			require.GreaterOrEqual(t, cost, last)
			seen[s] = cost
			last = cost
		}),
	)
	require.NoError(t, err)
	require.Equal(t, len(seen), f.Reached())
	for s, cost := range seen {
		require.Equal(t, cost, f.Dist(s))
	}
}

// TestSolve_MatchesBFS compares uniform-cost fields with BFS depths on
// random grids.
func TestSolve_MatchesBFS(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		g := randomGrid(t, r, 9, 7)
		start := pt{X: 0, Y: 0}
		f, err := dijkstra.Solve(g, start)
		require.NoError(t, err)

		res, err := bfs.BFS(g, start)
		require.NoError(t, err)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := pt{X: x, Y: y}
				depth, ok := res.Depth[p]
				if !ok {
					require.Equal(t, dijkstra.Inf, f.At(p), "trial %d cell %v", trial, p)
					continue
				}
				require.Equal(t, int64(depth), f.At(p), "trial %d cell %v", trial, p)
			}
		}
	}
}

// TestSolve_MatchesRelaxation compares directional fields with a naive
// fixed-point relaxation over every state.
func TestSolve_MatchesRelaxation(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		g := randomGrid(t, r, 6, 6)
		penalty := int64(r.Intn(5))
		f, err := dijkstra.Solve(g, pt{X: 0, Y: 0}, dijkstra.WithDirectional(), dijkstra.WithTurnPenalty(penalty))
		require.NoError(t, err)

		want := relaxAll(f)
		for s, d := range want {
			require.Equal(t, d, f.Dist(s), "trial %d state %v", trial, s)
		}
	}
}

// relaxAll recomputes every state cost by repeated relaxation using only
// Field.Cost, independent of the heap.
func relaxAll(f *dijkstra.Field) map[dijkstra.State]int64 {
	g := f.Grid()
	dist := map[dijkstra.State]int64{}
	var states []dijkstra.State
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, s := range f.States(pt{X: x, Y: y}) {
				dist[s] = dijkstra.Inf
				states = append(states, s)
			}
		}
	}
	if !g.Passable(f.Start().Pos) {
		return dist
	}
	dist[f.Start()] = 0
	for changed := true; changed; {
		changed = false
		for _, from := range states {
			if dist[from] == dijkstra.Inf {
				continue
			}
			for _, to := range states {
				c, ok := f.Cost(from, to)
				if ok && dist[from]+c < dist[to] {
					dist[to] = dist[from] + c
					changed = true
				}
			}
		}
	}
	return dist
}

func randomGrid(t testing.TB, r *rand.Rand, w, h int) *gridgraph.Grid {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
		for x := range rows[y] {
			rows[y][x] = r.Intn(4) != 0
		}
	}
	rows[0][0] = true
	g, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)
	return g
}

func referenceMaze(t testing.TB) (*gridgraph.Grid, pt, pt) {
	rows := []string{
		"###############",
		"#.......#....E#",
		"#.#.###.#.###.#",
		"#.....#.#...#.#",
		"#.###.#####.#.#",
		"#.#.#.......#.#",
		"#.#.#####.###.#",
		"#...........#.#",
		"###.#.#####.#.#",
		"#...#.....#.#.#",
		"#.#.#.###.#.#.#",
		"#.....#...#.#.#",
		"#.###.#.#.#.#.#",
		"#S..#.....#...#",
		"###############",
	}
	g := mustGrid(t, rows...)
	return g, pt{X: 1, Y: 13}, pt{X: 13, Y: 1}
}
