package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/render"
	"github.com/lixenwraith/rolldodge/ui"
)

const mutedLabel = "♪ off"

// HUDRenderer draws the score and the life indicators on the top row
type HUDRenderer struct {
	scoreBuf []byte
}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{scoreBuf: make([]byte, 0, 32)}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	if vp.ScreenHeight == 0 {
		return
	}

	r.scoreBuf = append(r.scoreBuf[:0], constants.ScoreLabelPrefix...)
	r.scoreBuf = strconv.AppendInt(r.scoreBuf, int64(ctx.World.Score), 10)
	x := buf.DrawText(1, 0, string(r.scoreBuf), render.RgbScore, tcell.AttrBold)

	if ctx.IsMuted {
		buf.DrawText(x+2, 0, mutedLabel, render.RgbMuted, tcell.AttrNone)
	}

	// Hearts right-aligned
	hearts := ctx.HUD.Hearts
	hx := vp.ScreenWidth - 1 - len(hearts)*constants.HeartSpacing
	for i, h := range hearts {
		x := hx + i*constants.HeartSpacing + 1
		switch h.State {
		case ui.HeartBreaking:
			color := render.Lerp(render.RgbHeart, render.RgbHeartBroken, h.Progress)
			buf.SetFgOnly(x, 0, constants.HeartBrokenChar, color, tcell.AttrNone)
		default:
			buf.SetFgOnly(x, 0, constants.HeartChar, render.RgbHeart, tcell.AttrBold)
		}
	}
}
