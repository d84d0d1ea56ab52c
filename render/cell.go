package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// emptyCell is the cleared state, Bg is replaced with the default background at flush when untouched
var emptyCell = Cell{Rune: 0, Fg: RgbText, Bg: RGBBlack, Attrs: tcell.AttrNone}
