package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/render"
	"github.com/lixenwraith/rolldodge/ui"
)

// LabelRenderer draws floating Miss and combo labels centred on their anchor
type LabelRenderer struct{}

// NewLabelRenderer creates a floating label renderer
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

// Render implements SystemRenderer
func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	for _, l := range ctx.HUD.Labels {
		if l.Opacity <= 0 || l.Scale <= 0 {
			continue
		}
		color, attrs := render.RgbMissLabel, tcell.AttrNone
		if l.Kind == ui.LabelCombo {
			color, attrs = render.RgbComboLabel, tcell.AttrBold
		}

		cx, cy := vp.WorldToCell(l.X, l.Y)
		y := cy - 1
		if !vp.InPlayfield(0, y) {
			continue
		}
		x := cx - render.TextWidth(l.Text)/2
		for _, ch := range l.Text {
			if vp.InPlayfield(x, y) {
				fg := render.Lerp(buf.BgAt(x, y), color, l.Opacity)
				buf.SetFgOnly(x, y, ch, fg, attrs)
			}
			x++
		}
	}
}
