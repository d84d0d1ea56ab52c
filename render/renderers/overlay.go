package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/render"
)

type panelLine struct {
	text  string
	color render.RGB
	attrs tcell.AttrMask
}

// drawPanel draws a bordered box centred on the screen with centred lines
func drawPanel(ctx render.RenderContext, buf *render.RenderBuffer, lines []panelLine) {
	vp := ctx.Viewport

	width := constants.PanelMinWidth
	for _, l := range lines {
		width = max(width, render.TextWidth(l.text)+4)
	}
	height := max(constants.PanelMinHeight, len(lines)+2)
	width = min(width, vp.ScreenWidth)
	height = min(height, vp.ScreenHeight)

	x0 := (vp.ScreenWidth - width) / 2
	y0 := (vp.ScreenHeight - height) / 2

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			var r rune
			switch {
			case y == y0 && x == x0:
				r = '╭'
			case y == y0 && x == x0+width-1:
				r = '╮'
			case y == y0+height-1 && x == x0:
				r = '╰'
			case y == y0+height-1 && x == x0+width-1:
				r = '╯'
			case y == y0 || y == y0+height-1:
				r = '─'
			case x == x0 || x == x0+width-1:
				r = '│'
			default:
				r = ' '
			}
			buf.SetWithBg(x, y, r, render.RgbPanelBorder, render.RgbPanelBg)
		}
	}

	top := y0 + (height-len(lines))/2
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		x := x0 + (width-render.TextWidth(l.text))/2
		buf.DrawText(x, top+i, l.text, l.color, l.attrs)
	}
}

// GameOverRenderer draws the final results panel
type GameOverRenderer struct {
	lines []panelLine
}

// NewGameOverRenderer creates a game-over panel renderer
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{lines: make([]panelLine, 0, 8)}
}

// IsVisible implements VisibilityToggle
func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.HUD.GameOver.Visible
}

// Render implements SystemRenderer
func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	g := ctx.HUD.GameOver

	best := panelLine{text: fmt.Sprintf("Best: %d", g.BestScore), color: render.RgbText}
	if g.NewBest {
		best = panelLine{text: "New best!", color: render.RgbNewBest, attrs: tcell.AttrBold}
	}

	r.lines = append(r.lines[:0],
		panelLine{text: constants.GameOverTitle, color: render.RgbPanelTitle, attrs: tcell.AttrBold},
		panelLine{},
		panelLine{text: fmt.Sprintf("Score: %d", g.Score), color: render.RgbScore, attrs: tcell.AttrBold},
		best,
		panelLine{text: fmt.Sprintf("Max combo: %d", g.MaxCombo), color: render.RgbText},
		panelLine{},
		panelLine{text: constants.GameOverHint, color: render.RgbTextDim},
	)
	drawPanel(ctx, buf, r.lines)
}

// PauseRenderer draws the pause notice
type PauseRenderer struct{}

// NewPauseRenderer creates a pause overlay renderer
func NewPauseRenderer() *PauseRenderer {
	return &PauseRenderer{}
}

// IsVisible implements VisibilityToggle
func (r *PauseRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.IsPaused && !ctx.HUD.GameOver.Visible
}

// Render implements SystemRenderer
func (r *PauseRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	drawPanel(ctx, buf, []panelLine{
		{text: constants.PausedTitle, color: render.RgbPanelTitle, attrs: tcell.AttrBold},
		{},
		{text: constants.PausedHint, color: render.RgbTextDim},
	})
}
