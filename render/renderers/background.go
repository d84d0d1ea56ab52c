package renderers

import (
	"github.com/lixenwraith/rolldodge/render"
)

// BackgroundRenderer paints the HUD and status rows, the playfield keeps the default background
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	buf.FillRect(0, 0, vp.ScreenWidth, vp.PlayTop(), render.RgbHUDBg)
	buf.FillRect(0, vp.StatusRow(), vp.ScreenWidth, vp.ScreenHeight-vp.StatusRow(), render.RgbHUDBg)
}
