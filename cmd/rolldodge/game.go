package main

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/audio"
	"github.com/lixenwraith/rolldodge/config"
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/core"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/events"
	"github.com/lixenwraith/rolldodge/input"
	"github.com/lixenwraith/rolldodge/records"
	"github.com/lixenwraith/rolldodge/render"
	"github.com/lixenwraith/rolldodge/render/renderers"
	"github.com/lixenwraith/rolldodge/status"
	"github.com/lixenwraith/rolldodge/ui"
)

// game owns every piece of loop state, all methods run on the loop goroutine
type game struct {
	cfg *config.Config
	log zerolog.Logger

	screen       tcell.Screen
	clock        *engine.PausableClock
	machine      *input.Machine
	session      *engine.Session
	queue        *events.EventQueue
	router       *events.Router[time.Time]
	presenter    *ui.Presenter
	sound        *audio.SoundManager
	stats        *status.Tracker
	orchestrator *render.RenderOrchestrator
	viewport     render.Viewport

	snap engine.Snapshot
}

// newGame wires the session, presentation, audio feedback and records onto an initialised screen
func newGame(screen tcell.Screen, cfg *config.Config, keys *input.KeyTable, source engine.TimeProvider,
	sound *audio.SoundManager, keeper *records.Keeper, seed int64, log zerolog.Logger) *game {

	w, h := screen.Size()
	vp := render.NewViewport(w, h)
	ww, wh := vp.WorldSize()

	g := &game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		clock:    engine.NewPausableClock(source),
		machine:  input.NewMachine(keys, cfg.Input.HoldWindow),
		sound:    sound,
		viewport: vp,
		session: engine.NewSession(ww, wh,
			engine.WithTuning(cfg.Tuning()),
			engine.WithLogger(log),
			engine.WithRand(rand.New(rand.NewSource(seed))),
		),
		queue: events.NewEventQueue(),
		stats: status.NewTracker(status.NewRegistry(), log),
	}

	g.router = events.NewRouter[time.Time](g.queue)
	g.presenter = ui.NewPresenter(keeper, log)

	// Presenter first: the panel reads the best score before the keeper records this run
	g.router.Register(g.presenter)
	g.router.Register(keeper)
	g.router.Register(audio.NewFeedback(sound, log))
	g.router.Register(g.stats)

	g.orchestrator = render.NewRenderOrchestrator(screen, w, h)
	renderers.RegisterAll(g.orchestrator)
	return g
}

// handleEvent applies one terminal event, returns false when the game should exit
func (g *game) handleEvent(ev tcell.Event) bool {
	intent := g.machine.Process(ev, g.clock.RealTime())
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		g.log.Info().Str("session", g.session.ID).Msg("quit")
		return false

	case input.IntentPause:
		if g.session.State.GameOver {
			return true
		}
		paused := g.clock.Toggle()
		g.machine.Reset()
		g.log.Debug().Bool("paused", paused).Msg("pause toggled")

	case input.IntentToggleSound:
		muted := g.sound.ToggleMute()
		g.log.Debug().Bool("muted", muted).Msg("sound toggled")

	case input.IntentResize:
		g.resize(intent.Width, intent.Height)

	case input.IntentRestart:
		g.restart()

	case input.IntentConfirm:
		if g.presenter.View().GameOver.Visible {
			g.restart()
		}

	default:
		// Movement and roll wait for the next tick sample
		return true
	}

	g.draw(g.clock.Now())
	return true
}

// tick advances the session one frame, dispatches its events and renders
func (g *game) tick() {
	if g.clock.IsPaused() {
		g.draw(g.clock.Now())
		return
	}
	now := g.clock.Now()
	g.dispatch(g.session.Update(now, g.machine.Sample(g.clock.RealTime())), now)
	g.presenter.Advance(now)
	g.draw(now)
}

func (g *game) dispatch(evs []events.GameEvent, now time.Time) {
	g.queue.PushAll(evs)
	g.router.DispatchAll(now)
}

func (g *game) restart() {
	g.clock.Resume()
	g.machine.Reset()
	now := g.clock.Now()
	g.dispatch(g.session.Restart(now), now)
}

func (g *game) resize(width, height int) {
	g.viewport = render.NewViewport(width, height)
	ww, wh := g.viewport.WorldSize()
	g.session.Resize(ww, wh)
	g.orchestrator.Resize(width, height)
}

func (g *game) draw(now time.Time) {
	g.session.Fill(&g.snap)
	view := g.presenter.View()
	g.orchestrator.RenderFrame(render.RenderContext{
		GameTime: now,
		Frame:    g.snap.Frame,
		IsPaused: g.clock.IsPaused(),
		IsMuted:  g.sound.IsMuted(),
		Viewport: g.viewport,
		World:    &g.snap,
		HUD:      &view,
	})
}

// run drives the loop until quit or terminal closure
func (g *game) run() {
	eventChan := make(chan tcell.Event, constants.InputChannelSize)
	core.Go(func() {
		defer close(eventChan)
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	interval := g.cfg.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	wasPaused := false
	g.draw(g.clock.Now())

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			start := time.Now()
			g.tick()
			g.stats.ObserveTick(time.Since(start))
		}

		// Frozen clock needs far fewer redraws
		if paused := g.clock.IsPaused(); paused != wasPaused {
			wasPaused = paused
			if paused {
				ticker.Reset(constants.PausedPollInterval)
			} else {
				ticker.Reset(interval)
			}
		}
	}
}
