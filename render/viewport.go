package render

import (
	"math"

	"github.com/lixenwraith/rolldodge/components"
	"github.com/lixenwraith/rolldodge/constants"
)

// Viewport maps world units onto terminal cells
// Row 0 is the HUD, the last row is the status bar, the playfield lies between
type Viewport struct {
	ScreenWidth  int
	ScreenHeight int
}

// NewViewport creates a viewport for a terminal of width x height cells
func NewViewport(width, height int) Viewport {
	return Viewport{ScreenWidth: max(width, 0), ScreenHeight: max(height, 0)}
}

// PlayTop returns the first playfield row
func (v Viewport) PlayTop() int {
	return constants.HUDRows
}

// PlayRows returns the number of playfield rows
func (v Viewport) PlayRows() int {
	return max(0, v.ScreenHeight-constants.HUDRows-constants.StatusRows)
}

// StatusRow returns the status bar row
func (v Viewport) StatusRow() int {
	return v.ScreenHeight - constants.StatusRows
}

// WorldSize returns the playfield dimensions in world units
func (v Viewport) WorldSize() (float64, float64) {
	return float64(v.ScreenWidth) * constants.CellWidth, float64(v.PlayRows()) * constants.CellHeight
}

// WorldToCell converts a world point to screen cell coordinates
func (v Viewport) WorldToCell(x, y float64) (int, int) {
	cx := int(math.Floor(x / constants.CellWidth))
	cy := int(math.Floor(y/constants.CellHeight)) + v.PlayTop()
	return cx, cy
}

// BoxCells returns the half-open screen cell span [x0, x1) x [y0, y1) covered by a world box
func (v Viewport) BoxCells(b components.Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X / constants.CellWidth))
	x1 = int(math.Ceil((b.X + b.Width) / constants.CellWidth))
	y0 = int(math.Floor(b.Y/constants.CellHeight)) + v.PlayTop()
	y1 = int(math.Ceil((b.Y+b.Height)/constants.CellHeight)) + v.PlayTop()
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

// InPlayfield reports whether a screen cell lies inside the playfield
func (v Viewport) InPlayfield(x, y int) bool {
	return x >= 0 && x < v.ScreenWidth && y >= v.PlayTop() && y < v.PlayTop()+v.PlayRows()
}
