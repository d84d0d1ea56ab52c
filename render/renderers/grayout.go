package renderers

import (
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/render"
)

// GrayoutRenderer desaturates and darkens the playfield once the game is over
type GrayoutRenderer struct{}

// NewGrayoutRenderer creates a grayscale post-processor
func NewGrayoutRenderer() *GrayoutRenderer {
	return &GrayoutRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *GrayoutRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.World.GameOver
}

// Render implements SystemRenderer
func (r *GrayoutRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vp := ctx.Viewport
	buf.Dim(0, vp.PlayTop(), vp.ScreenWidth, vp.PlayRows(), constants.GrayoutFactor)
}
