// Package view draws a grid, the tiles on its optimal paths, and the route
// endpoints onto a tcell.Screen.
//
// Draw is pure rendering and works against any tcell.Screen, including
// tcell.NewSimulationScreen. Present adds an event loop on top of Draw, and
// Show opens the real terminal for interactive inspection.
package view

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathset"
)

// Glyphs used for each cell class.
const (
	WallRune  = '#'
	OpenRune  = '.'
	TileRune  = 'O'
	StartRune = 'S'
	EndRune   = 'E'
)

// ErrNilGrid is returned when a Scene carries no grid.
var ErrNilGrid = errors.New("view: scene has no grid")

// Theme holds the style of each cell class.
type Theme struct {
	Wall    tcell.Style
	Open    tcell.Style
	Tile    tcell.Style
	Start   tcell.Style
	End     tcell.Style
	Caption tcell.Style
}

// DefaultTheme returns a dim maze with highlighted path tiles and endpoints.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Wall:    base.Foreground(tcell.ColorGray),
		Open:    base.Foreground(tcell.ColorDarkGray),
		Tile:    base.Foreground(tcell.ColorYellow).Bold(true),
		Start:   base.Foreground(tcell.ColorGreen).Bold(true),
		End:     base.Foreground(tcell.ColorRed).Bold(true),
		Caption: base.Foreground(tcell.ColorWhite),
	}
}

// Scene is everything Draw puts on screen.
type Scene struct {
	Grid  *gridgraph.Grid
	Tiles pathset.TileSet // may be nil
	Start gridgraph.Point
	End   gridgraph.Point
	// Caption is printed on the row below the grid when non-empty.
	Caption string
}

// Cell reports the glyph and style for p. Endpoints win over path tiles,
// path tiles win over plain passable cells.
func (sc Scene) Cell(p gridgraph.Point, th Theme) (rune, tcell.Style) {
	switch {
	case p == sc.Start:
		return StartRune, th.Start
	case p == sc.End:
		return EndRune, th.End
	case !sc.Grid.Passable(p):
		return WallRune, th.Wall
	case sc.Tiles.Has(p):
		return TileRune, th.Tile
	default:
		return OpenRune, th.Open
	}
}

// Draw clears s and renders sc with th, clipping to the screen size.
// It does not call s.Show.
func Draw(s tcell.Screen, sc Scene, th Theme) error {
	if sc.Grid == nil {
		return ErrNilGrid
	}
	s.Clear()
	sw, sh := s.Size()
	w, h := sc.Grid.Dimensions()
	for y := 0; y < h && y < sh; y++ {
		for x := 0; x < w && x < sw; x++ {
			r, st := sc.Cell(gridgraph.Point{X: x, Y: y}, th)
			s.SetContent(x, y, r, nil, st)
		}
	}
	if sc.Caption != "" && h < sh {
		x := 0
		for _, r := range sc.Caption {
			if x >= sw {
				break
			}
			s.SetContent(x, h, r, nil, th.Caption)
			x++
		}
	}
	return nil
}

// Present draws sc on an initialised screen and blocks until the user
// presses q, Escape or Ctrl-C. Resizes trigger a redraw.
func Present(s tcell.Screen, sc Scene, th Theme) error {
	if err := Draw(s, sc, th); err != nil {
		return err
	}
	s.Show()
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			// screen finalised underneath us
			return nil
		case *tcell.EventResize:
			s.Sync()
			if err := Draw(s, sc, th); err != nil {
				return err
			}
			s.Show()
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		}
	}
}

// Show opens the terminal, presents sc and restores the terminal on return.
func Show(sc Scene, th Theme) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	return Present(s, sc, th)
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
