package renderers

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/render"
	"github.com/lixenwraith/rolldodge/ui"
)

const (
	screenW = 80
	screenH = 24
)

// newWorld returns a session sized to fill an 80x24 terminal
func newWorld(t *testing.T) *engine.Session {
	t.Helper()
	w, h := render.NewViewport(screenW, screenH).WorldSize()
	return engine.NewTestSession(w, h, false)
}

func drawFrame(s *engine.Session, view ui.View, paused, muted bool) *render.RenderBuffer {
	o := render.NewRenderOrchestrator(nil, screenW, screenH)
	RegisterAll(o)

	var snap engine.Snapshot
	s.Fill(&snap)

	o.RenderFrame(render.RenderContext{
		IsPaused: paused,
		IsMuted:  muted,
		Viewport: render.NewViewport(screenW, screenH),
		World:    &snap,
		HUD:      &view,
	})
	return o.Buffer()
}

func defaultView() ui.View {
	return ui.NewPresenter(nil, zerolog.Nop()).View()
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(buf *render.RenderBuffer) string {
	_, h := buf.Bounds()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = rowText(buf, y)
	}
	return strings.Join(lines, "\n")
}

func countRune(buf *render.RenderBuffer, r rune) int {
	return strings.Count(screenText(buf), string(r))
}

func TestHUDShowsScoreAndHearts(t *testing.T) {
	buf := drawFrame(newWorld(t), defaultView(), false, false)

	if !strings.Contains(rowText(buf, 0), "Score: 0") {
		t.Errorf("HUD row missing score: %q", rowText(buf, 0))
	}
	for _, x := range []int{74, 76, 78} {
		if got := buf.Get(x, 0).Rune; got != constants.HeartChar {
			t.Errorf("Expected heart at column %d, got %q", x, got)
		}
	}
	if strings.Contains(rowText(buf, 0), mutedLabel) {
		t.Error("Mute label shown while sound is on")
	}
}

func TestHUDMuteIndicator(t *testing.T) {
	buf := drawFrame(newWorld(t), defaultView(), false, true)
	if !strings.Contains(rowText(buf, 0), mutedLabel) {
		t.Errorf("Expected mute label, got %q", rowText(buf, 0))
	}
}

func TestHUDBreakingHeart(t *testing.T) {
	view := defaultView()
	view.Hearts[2] = ui.Heart{State: ui.HeartBreaking, Progress: 0.5}

	buf := drawFrame(newWorld(t), view, false, false)
	if got := buf.Get(78, 0).Rune; got != constants.HeartBrokenChar {
		t.Errorf("Expected breaking heart, got %q", got)
	}
}

func TestStatusBarReady(t *testing.T) {
	buf := drawFrame(newWorld(t), defaultView(), false, false)
	row := rowText(buf, screenH-1)
	if !strings.Contains(row, constants.CooldownTextReady) {
		t.Errorf("Status row missing ready text: %q", row)
	}
	// Ready bar is full
	if got := buf.Get(screenW-2, screenH-1).Bg; got != render.RgbCooldownReady {
		t.Errorf("Expected full ready bar, got %v", got)
	}
}

func TestStatusBarCooling(t *testing.T) {
	view := defaultView()
	view.Cooldown = ui.CooldownView{State: ui.CooldownCooling, Progress: 0.5, Fill: 0, Text: "[space] cooldown (50%)"}

	buf := drawFrame(newWorld(t), view, false, false)
	if got := buf.Get(screenW-2, screenH-1).Bg; got != render.RgbCooldownTrack {
		t.Errorf("Expected empty track at the end of the bar, got %v", got)
	}
	if !strings.Contains(rowText(buf, screenH-1), "cooldown (50%)") {
		t.Error("Cooling text missing")
	}
}

func TestPlayerDrawn(t *testing.T) {
	buf := drawFrame(newWorld(t), defaultView(), false, false)

	// Player box spans columns 37..42 and rows 18..20
	if got := buf.Get(38, 19).Bg; got != render.RgbPlayerBody {
		t.Errorf("Expected body color, got %v", got)
	}
	if got := buf.BgAt(36, 19); got != render.RgbBackground {
		t.Errorf("Cell left of the player should be background, got %v", got)
	}
	if n := countRune(buf, '•'); n != 2 {
		t.Errorf("Expected 2 eyes, got %d", n)
	}
	// Corners stay clear without invincibility
	if got := buf.Get(37, 18).Rune; got != 0 {
		t.Errorf("Expected empty corner, got %q", got)
	}
}

func TestInvincibleRing(t *testing.T) {
	s := newWorld(t)
	s.State.IsInvincible = true

	buf := drawFrame(s, defaultView(), false, false)
	want := map[[2]int]rune{{37, 18}: '╭', {42, 18}: '╮', {37, 20}: '╰', {42, 20}: '╯'}
	for pos, r := range want {
		c := buf.Get(pos[0], pos[1])
		if c.Rune != r || c.Fg != render.RgbInvincible {
			t.Errorf("Corner %v: expected %q in invincible color, got %+v", pos, r, c)
		}
	}
}

func TestEntitiesDrawn(t *testing.T) {
	s := newWorld(t)
	s.SpawnObstacle(100, 100, 0)
	s.SpawnHeal(200, 100)

	buf := drawFrame(s, defaultView(), false, false)

	// 30x30 at (100,100) covers columns 10..12 and rows 6..7
	if got := buf.Get(10, 6).Bg; got != render.RgbObstacle {
		t.Errorf("Expected obstacle at (10,6), got %v", got)
	}
	if got := buf.Get(20, 6).Bg; got != render.RgbHealBg {
		t.Errorf("Expected heal tile at (20,6), got %v", got)
	}
	if countRune(buf, '+') != 1 {
		t.Error("Expected one heal cross")
	}
}

func TestLabelsDrawn(t *testing.T) {
	view := defaultView()
	view.Labels = []ui.FloatingLabel{
		{Kind: ui.LabelMiss, Text: constants.MissLabelText, X: 400, Y: 200, Opacity: 1, Scale: 1},
		{Kind: ui.LabelCombo, Text: "hidden", X: 400, Y: 100, Opacity: 0, Scale: 1},
	}

	buf := drawFrame(newWorld(t), view, false, false)
	row := rowText(buf, 10)
	if !strings.Contains(row, constants.MissLabelText) {
		t.Errorf("Expected miss label on row 10, got %q", row)
	}
	if strings.Contains(screenText(buf), "hidden") {
		t.Error("Fully transparent label was drawn")
	}
}

func TestGameOverPanel(t *testing.T) {
	s := newWorld(t)
	view := defaultView()

	buf := drawFrame(s, view, false, false)
	if strings.Contains(screenText(buf), constants.GameOverTitle) {
		t.Fatal("Game over panel visible during play")
	}

	s.State.GameOver = true
	view.GameOver = ui.GameOverView{Visible: true, Score: 1234, BestScore: 1234, MaxCombo: 3, NewBest: true}
	buf = drawFrame(s, view, true, false)

	text := screenText(buf)
	for _, want := range []string{constants.GameOverTitle, "Score: 1234", "New best!", "Max combo: 3"} {
		if !strings.Contains(text, want) {
			t.Errorf("Panel missing %q", want)
		}
	}
	// Pause panel is suppressed behind the results
	if strings.Contains(text, constants.PausedTitle) {
		t.Error("Pause panel drawn over game over")
	}
}

func TestGrayoutOnGameOver(t *testing.T) {
	s := newWorld(t)
	s.State.GameOver = true

	buf := drawFrame(s, defaultView(), false, false)
	if got := buf.BgAt(2, 2); got == render.RgbBackground {
		t.Error("Playfield should be dimmed after game over")
	}
	// HUD row stays untouched by the grayout
	if got := buf.BgAt(2, 0); got != render.RgbHUDBg {
		t.Errorf("HUD row should keep its background, got %v", got)
	}
}

func TestPausePanel(t *testing.T) {
	buf := drawFrame(newWorld(t), defaultView(), true, false)
	if !strings.Contains(screenText(buf), constants.PausedTitle) {
		t.Error("Pause panel missing")
	}
}
