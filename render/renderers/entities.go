package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/render"
)

// ObstacleRenderer draws falling obstacles as brown blocks
type ObstacleRenderer struct{}

// NewObstacleRenderer creates an obstacle renderer
func NewObstacleRenderer() *ObstacleRenderer {
	return &ObstacleRenderer{}
}

// Render implements SystemRenderer
func (r *ObstacleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	for i := range ctx.World.Obstacles {
		x0, y0, x1, y1 := vp.BoxCells(ctx.World.Obstacles[i].Box())
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if vp.InPlayfield(x, y) {
					buf.SetWithBg(x, y, ' ', render.RgbObstacle, render.RgbObstacle)
				}
			}
		}
	}
}

// HealRenderer draws heal items as white tiles with a green cross
type HealRenderer struct{}

// NewHealRenderer creates a heal item renderer
func NewHealRenderer() *HealRenderer {
	return &HealRenderer{}
}

// Render implements SystemRenderer
func (r *HealRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	for i := range ctx.World.Heals {
		box := ctx.World.Heals[i].Box()
		x0, y0, x1, y1 := vp.BoxCells(box)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if vp.InPlayfield(x, y) {
					buf.SetWithBg(x, y, ' ', render.RgbHealBg, render.RgbHealBg)
				}
			}
		}
		cx, cy := vp.WorldToCell(box.CenterX(), box.CenterY())
		if vp.InPlayfield(cx, cy) {
			buf.Set(cx, cy, '+', render.RgbHealCross, render.RgbHealBg, render.BlendReplace, 1, tcell.AttrBold)
		}
	}
}
