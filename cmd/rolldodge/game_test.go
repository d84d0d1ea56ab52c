package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/audio"
	"github.com/lixenwraith/rolldodge/config"
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/input"
	"github.com/lixenwraith/rolldodge/records"
)

const tickStep = 16 * time.Millisecond

type testGame struct {
	*game
	screen tcell.SimulationScreen
	mock   *engine.MockTimeProvider
	store  *records.Store
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	store, err := records.Open(filepath.Join(t.TempDir(), "records.yaml"), 5)
	if err != nil {
		t.Fatal(err)
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = false
	sound := audio.NewSoundManager(audioCfg, zerolog.Nop())

	mock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	keeper := records.NewKeeper(store, zerolog.Nop())

	g := newGame(screen, config.Default(), input.DefaultKeyTable(), mock, sound, keeper, 1, zerolog.Nop())
	return &testGame{game: g, screen: screen, mock: mock, store: store}
}

func (tg *testGame) step(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		tg.mock.Advance(d)
		tg.tick()
	}
}

func (tg *testGame) key(k tcell.Key, r rune, mod tcell.ModMask) bool {
	return tg.handleEvent(tcell.NewEventKey(k, r, mod))
}

func (tg *testGame) press(r rune) bool {
	return tg.key(tcell.KeyRune, r, tcell.ModNone)
}

func (tg *testGame) screenText() string {
	w, h := tg.screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := tg.screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestGameStartsAndScores(t *testing.T) {
	tg := newTestGame(t)
	tg.draw(tg.clock.Now())

	if !strings.Contains(tg.screenText(), "Score: 0") {
		t.Error("Initial frame missing score")
	}

	tg.step(10, tickStep)
	if got := tg.session.State.Score; got != 10 {
		t.Errorf("Expected score 10 after 10 ticks, got %d", got)
	}
	if !strings.Contains(tg.screenText(), "Score: 10") {
		t.Error("Rendered score not updated")
	}
}

func TestGameMovementAndRoll(t *testing.T) {
	tg := newTestGame(t)
	startX := tg.session.Player.X

	tg.key(tcell.KeyLeft, 0, tcell.ModNone)
	tg.step(1, tickStep)
	if tg.session.Player.X >= startX {
		t.Errorf("Player should move left, x %v -> %v", startX, tg.session.Player.X)
	}

	// Hold window lapses without repeats
	tg.step(20, tickStep)
	x := tg.session.Player.X
	tg.step(1, tickStep)
	if tg.session.Player.X != x {
		t.Error("Released key should stop movement")
	}

	tg.press(' ')
	tg.step(1, tickStep)
	if !tg.session.State.IsRolling {
		t.Error("Space should start a roll")
	}
}

func TestGamePause(t *testing.T) {
	tg := newTestGame(t)
	tg.step(3, tickStep)

	tg.press('p')
	if !tg.clock.IsPaused() {
		t.Fatal("Expected paused clock")
	}
	frame := tg.session.Frame()
	tg.step(5, tickStep)
	if tg.session.Frame() != frame {
		t.Error("Session advanced while paused")
	}
	if !strings.Contains(tg.screenText(), constants.PausedTitle) {
		t.Error("Pause panel not shown")
	}

	tg.press('p')
	tg.step(1, tickStep)
	if tg.session.Frame() != frame+1 {
		t.Error("Session did not resume")
	}
}

func TestGameQuit(t *testing.T) {
	tg := newTestGame(t)
	if tg.press('q') {
		t.Error("q should quit")
	}
	if tg.key(tcell.KeyEscape, 0, tcell.ModNone) {
		t.Error("Esc should quit")
	}
}

func TestGameRestartAndConfirm(t *testing.T) {
	tg := newTestGame(t)
	tg.step(5, tickStep)
	id := tg.session.ID

	// Enter only restarts from the game-over panel
	tg.key(tcell.KeyEnter, 0, tcell.ModNone)
	if tg.session.ID != id {
		t.Error("Enter restarted a running game")
	}

	tg.press('r')
	if tg.session.ID == id {
		t.Error("r should restart")
	}
	if tg.session.State.Score != 0 {
		t.Errorf("Restart should reset score, got %d", tg.session.State.Score)
	}
}

func TestGameResize(t *testing.T) {
	tg := newTestGame(t)
	tg.screen.SetSize(100, 30)
	tg.handleEvent(tcell.NewEventResize(100, 30))

	w, h := tg.session.Size()
	if w != 1000 || h != 560 {
		t.Errorf("Expected world 1000x560, got %vx%v", w, h)
	}
	if bw, bh := tg.orchestrator.Buffer().Bounds(); bw != 100 || bh != 30 {
		t.Errorf("Render buffer not resized: %dx%d", bw, bh)
	}
}

func TestGameSoundToggle(t *testing.T) {
	tg := newTestGame(t)
	tg.key(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	if !tg.sound.IsMuted() {
		t.Fatal("Ctrl+S should mute")
	}
	if !strings.Contains(tg.screenText(), "♪ off") {
		t.Error("Mute indicator missing")
	}
}

func TestGameOverFlow(t *testing.T) {
	tg := newTestGame(t)
	tg.step(1, tickStep)

	tg.session.State.SetLives(1)
	p := tg.session.Player
	tg.session.SpawnObstacle(p.X, p.Y, 0)

	tg.step(1, tickStep)
	if !tg.session.State.GameOver {
		t.Fatal("Expected game over after the last life")
	}
	score := tg.session.State.Score

	// Panel appears after the reveal delay
	for i := 0; i < 200 && !tg.presenter.View().GameOver.Visible; i++ {
		tg.step(1, 50*time.Millisecond)
	}
	view := tg.presenter.View().GameOver
	if !view.Visible {
		t.Fatal("Game over panel never shown")
	}
	if view.Score != score || !view.NewBest {
		t.Errorf("Unexpected panel %+v, score %d", view, score)
	}
	if tg.store.Best() != score {
		t.Errorf("Expected recorded best %d, got %d", score, tg.store.Best())
	}
	if !strings.Contains(tg.screenText(), constants.GameOverTitle) {
		t.Error("Panel not rendered")
	}

	// Pause is ignored on the panel, Enter restarts
	tg.press('p')
	if tg.clock.IsPaused() {
		t.Error("Pause should be ignored after game over")
	}
	tg.key(tcell.KeyEnter, 0, tcell.ModNone)
	if tg.session.State.GameOver || tg.presenter.View().GameOver.Visible {
		t.Error("Enter should restart from the panel")
	}
}
