package view_test

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/view"
)

// ExampleDraw renders onto a simulation screen and reads the first row back.
func ExampleDraw() {
	g, _ := gridgraph.FromStrings([]string{"..#.."})
	screen := tcell.NewSimulationScreen("UTF-8")
	_ = screen.Init()
	defer screen.Fini()
	screen.SetSize(5, 1)

	sc := view.Scene{Grid: g, Start: gridgraph.Point{X: 0, Y: 0}, End: gridgraph.Point{X: 4, Y: 0}}
	_ = view.Draw(screen, sc, view.DefaultTheme())

	line := make([]rune, 5)
	for x := range line {
		line[x], _, _, _ = screen.GetContent(x, 0)
	}
	fmt.Println(string(line))
	// Output: S.#.E
}
