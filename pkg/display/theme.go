package display

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Theme is used for coloring the board window.
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // squares of the last move
	SquareCheck tcell.Color // square of a king in check
	White       tcell.Color
	Black       tcell.Color
	Rank        tcell.Color
	File        tcell.Color
	Text        tcell.Color
	Message     tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color226,
	SquareCheck: tcell.Color218,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	Text:        tcell.ColorDefault,
	Message:     tcell.ColorWhite,
}

// ThemeWood mimics the brown board of most chess GUIs.
var ThemeWood = Theme{
	Name:        "wood",
	SquareDark:  tcell.NewHexColor(0xb58863),
	SquareLight: tcell.NewHexColor(0xf0d9b5),
	SquareHigh:  tcell.NewHexColor(0xcdd26a),
	SquareCheck: tcell.NewHexColor(0xe06666),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	Text:        tcell.ColorDefault,
	Message:     tcell.ColorWhite,
}

var themes = map[string]Theme{
	ThemeBasic.Name: ThemeBasic,
	ThemeWood.Name:  ThemeWood,
}

// ThemeByName returns the named theme; the empty name is ThemeBasic.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return ThemeBasic, nil
	}

	if t, found := themes[name]; found {
		return t, nil
	}

	return Theme{}, fmt.Errorf("theme: no theme named %q", name)
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
