// Command gridpath answers shortest-path questions about text maps.
//
// Usage:
//
//	gridpath route     -input maze.txt [-turn 1000] [-view]
//	gridpath shortcuts -input track.txt [-jump 2] [-min 100] [-list 0]
//	gridpath bytes     -input drops.txt [-size 71] [-take 1024]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridpath/blockage"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/pathset"
	"github.com/katalvlaran/gridpath/shortcut"
	"github.com/katalvlaran/gridpath/view"
)

var errUsage = errors.New("usage: gridpath <route|shortcuts|bytes> [flags]")

func main() {
	log.SetPrefix("gridpath: ")
	log.SetFlags(0)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "route":
		return runRoute(args[1:], out)
	case "shortcuts":
		return runShortcuts(args[1:], out)
	case "bytes":
		return runBytes(args[1:], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// runRoute prints the cheapest turn-aware route cost through a maze and
// how many tiles lie on at least one cheapest route.
func runRoute(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	input := fs.String("input", "", "maze file with S and E markers")
	turn := fs.Int64("turn", 1000, "cost of each quarter turn")
	show := fs.Bool("view", false, "draw the optimal tiles in the terminal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := readMaze(*input)
	if err != nil {
		return err
	}
	f, err := dijkstra.Solve(m.Grid, m.Start,
		dijkstra.WithDirectional(),
		dijkstra.WithTurnPenalty(*turn),
		dijkstra.WithGoal(m.End),
	)
	if err != nil {
		return err
	}
	if !f.Reachable(m.End) {
		if !m.Grid.SameRegion(m.Start, m.End) {
			return fmt.Errorf("no route: start %v and end %v are in different regions", m.Start, m.End)
		}
		return fmt.Errorf("no route from %v to %v", m.Start, m.End)
	}

	cost, err := pathset.BestCost(f, m.End)
	if err != nil {
		return err
	}
	tiles, err := pathset.OptimalTiles(f, m.End)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "cost %d\ntiles %d\n", cost, tiles.Len())

	if *show {
		return view.Show(view.Scene{
			Grid:    m.Grid,
			Tiles:   tiles,
			Start:   m.Start,
			End:     m.End,
			Caption: fmt.Sprintf("cost %d, %d tiles (q to quit)", cost, tiles.Len()),
		}, view.DefaultTheme())
	}
	return nil
}

// runShortcuts counts jumps through walls that save at least -min steps.
func runShortcuts(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shortcuts", flag.ContinueOnError)
	input := fs.String("input", "", "race track file with S and E markers")
	jump := fs.Int("jump", 2, "maximum Manhattan length of a jump")
	minSaving := fs.Int64("min", 100, "only count jumps saving at least this much")
	list := fs.Int("list", 0, "also print up to this many of the best jumps")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := readMaze(*input)
	if err != nil {
		return err
	}
	f, err := dijkstra.Solve(m.Grid, m.Start)
	if err != nil {
		return err
	}
	if !f.Reachable(m.End) {
		return fmt.Errorf("no route from %v to %v", m.Start, m.End)
	}

	hist, err := shortcut.Enumerate(f, *jump)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "base %d\nshortcuts %d\n", f.At(m.End), hist.AtLeast(*minSaving))

	if *list > 0 {
		best, err := shortcut.List(f, *jump, *minSaving)
		if err != nil {
			return err
		}
		if len(best) > *list {
			best = best[:*list]
		}
		for _, sc := range best {
			fmt.Fprintf(out, "%v -> %v len %d save %d\n", sc.From, sc.To, sc.Length, sc.Saving)
		}
	}
	return nil
}

// runBytes drops obstacles onto an open square, reports the shortest
// corner-to-corner walk after the first -take drops, then the first drop
// that cuts the corners apart.
func runBytes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bytes", flag.ContinueOnError)
	input := fs.String("input", "", "file of x,y obstacle coordinates")
	size := fs.Int("size", 71, "side of the square grid")
	take := fs.Int("take", 1024, "obstacles fallen before the walk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *take < 0 {
		return fmt.Errorf("bytes: -take must not be negative, got %d", *take)
	}

	r, err := os.Open(*input)
	if err != nil {
		return err
	}
	defer r.Close()
	drops, err := maze.ParseDrops(r)
	if err != nil {
		return err
	}

	g, err := gridgraph.Open(*size, *size)
	if err != nil {
		return err
	}
	start := gridgraph.Point{X: 0, Y: 0}
	goal := gridgraph.Point{X: *size - 1, Y: *size - 1}

	fallen, err := blockage.Apply(g, drops, *take)
	if err != nil {
		return err
	}
	f, err := dijkstra.Solve(fallen, start, dijkstra.WithGoal(goal), dijkstra.WithStopAtGoal())
	if err != nil {
		return err
	}
	if f.Reachable(goal) {
		fmt.Fprintf(out, "steps %d\n", f.At(goal))
	} else {
		fmt.Fprintln(out, "steps none")
	}

	// The search replays many prefixes; let Ctrl-C end it cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	idx, err := blockage.FirstBlockingContext(ctx, g, start, goal, drops)
	switch {
	case errors.Is(err, blockage.ErrNeverBlocked):
		fmt.Fprintln(out, "blocker none")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "blocker %v\n", drops[idx])
	}
	return nil
}

func readMaze(path string) (*maze.Maze, error) {
	if path == "" {
		return nil, errors.New("missing -input")
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return maze.Parse(r)
}
