package renderers

import (
	"math"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/render"
)

// Face layout relative to the body centre in world units
// The vertical bob is amplified so the idle animation crosses a cell row
const (
	faceEyeX     = 10.0
	faceEyeY     = -12.0
	faceMouthY   = 18.0
	faceBobScale = 2.0
)

// PlayerRenderer draws the body, face, damage flash and invincibility ring
type PlayerRenderer struct{}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	vp := ctx.Viewport
	box := w.Player.Box()
	x0, y0, x1, y1 := vp.BoxCells(box)

	intensity := float64(w.HitEffect) / constants.HitFlashMax
	body := render.Lerp(render.RgbPlayerBody, render.RgbPlayerHit, intensity)

	// Shake on strong flashes
	shake := 0
	if intensity > 0.5 {
		shake = int(ctx.Frame%2)*2 - 1
	}
	x0 += shake
	x1 += shake

	cols, rows := x1-x0, y1-y0
	rounded := cols > 2 && rows > 2
	corners := [4]rune{'╭', '╮', '╰', '╯'}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := x0+col, y0+row
			if !vp.InPlayfield(x, y) {
				continue
			}
			top, bottom := row == 0, row == rows-1
			left, right := col == 0, col == cols-1
			if rounded && (top || bottom) && (left || right) {
				if w.IsInvincible {
					idx := 0
					if right {
						idx++
					}
					if bottom {
						idx += 2
					}
					buf.SetFgOnly(x, y, corners[idx], render.RgbInvincible, 0)
				}
				continue
			}
			buf.SetWithBg(x, y, ' ', body, body)
		}
	}

	// Face rotates with the roll and the death fall
	angle := 0.0
	if w.IsRolling {
		angle += w.RollAngle
	}
	if w.IsDying {
		angle += w.DeathRotation
	}
	face := 0.0
	if !w.IsRolling && !w.Player.IsMoving && !w.IsDying {
		face = w.FaceOffset * faceBobScale
	}

	cx := box.CenterX() + float64(shake)*constants.CellWidth
	cy := box.CenterY()
	sin, cos := math.Sincos(angle * math.Pi / 180)
	place := func(ox, oy float64) (int, int) {
		return vp.WorldToCell(cx+ox*cos-oy*sin, cy+ox*sin+oy*cos)
	}

	for _, side := range [2]float64{-1, 1} {
		ex, ey := place(side*faceEyeX, faceEyeY+face)
		if vp.InPlayfield(ex, ey) {
			buf.SetWithBg(ex, ey, '•', render.RgbPlayerPupil, render.RgbPlayerEye)
		}
	}
	mx, my := place(0, faceMouthY+face)
	if vp.InPlayfield(mx, my) {
		buf.SetFgOnly(mx, my, '‿', render.RgbPlayerPupil, 0)
	}
}

// SoulRenderer draws the translucent soul rising from the body while dying
type SoulRenderer struct{}

// NewSoulRenderer creates a soul renderer
func NewSoulRenderer() *SoulRenderer {
	return &SoulRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *SoulRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.World.IsDying
}

// Render implements SystemRenderer
func (r *SoulRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	vp := ctx.Viewport
	p := w.Player

	size := p.Width * 0.8
	soul := p.Box()
	soul.X = soul.CenterX() - size/2
	soul.Y = soul.CenterY() - size/2 - w.SoulY
	soul.Width, soul.Height = size, size

	x0, y0, x1, y1 := vp.BoxCells(soul)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if vp.InPlayfield(x, y) {
				buf.Set(x, y, 0, render.RgbSoul, render.RgbSoul, render.BlendAlpha, 0.5, 0)
			}
		}
	}

	for _, side := range [2]float64{-1, 1} {
		ex, ey := vp.WorldToCell(soul.CenterX()+side*8, soul.CenterY()-3)
		if vp.InPlayfield(ex, ey) {
			buf.SetFgOnly(ex, ey, '°', render.RgbSoulEye, 0)
		}
	}
}
