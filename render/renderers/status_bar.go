package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/render"
	"github.com/lixenwraith/rolldodge/ui"
)

// StatusBarRenderer draws the roll cooldown indicator on the bottom row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	y := vp.StatusRow()
	if y < vp.PlayTop() {
		return
	}

	c := ctx.HUD.Cooldown
	var color render.RGB
	switch c.State {
	case ui.CooldownRolling:
		color = render.RgbCooldownRolling
	case ui.CooldownCooling:
		color = render.RgbCooldownCooling
	default:
		color = render.RgbCooldownReady
	}

	x := buf.DrawText(1, y, c.Text, color, tcell.AttrNone) + 1

	// Bar fills the rest of the row
	width := vp.ScreenWidth - 1 - x
	if width <= 0 {
		return
	}
	filled := int(c.Fill*float64(width) + 0.5)
	for i := 0; i < width; i++ {
		if i < filled {
			buf.SetWithBg(x+i, y, ' ', color, color)
		} else {
			buf.SetWithBg(x+i, y, ' ', render.RgbCooldownTrack, render.RgbCooldownTrack)
		}
	}
}
