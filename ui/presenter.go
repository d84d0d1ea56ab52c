package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/events"
)

// BestScoreSource provides the best recorded score, read when the game-over panel opens
type BestScoreSource interface {
	Best() int
}

// missLabel ramps per rendered frame, not per unit of time
type missLabel struct {
	label   FloatingLabel
	originY float64
	age     int
}

// Presenter is the presentation adapter: it consumes session events and owns widget state
// Must be registered before handlers that update the best-score source
type Presenter struct {
	log  zerolog.Logger
	best BestScoreSource

	// Authoritative life count from the last lives-carrying event
	lives  int
	hearts []Heart

	cooldown CooldownView

	misses       []missLabel
	combo        FloatingLabel
	comboVisible bool

	gameOver GameOverView

	// Heart break and combo label timing, independent of the session set
	effects *engine.EffectSet

	view View
}

// NewPresenter creates a presenter showing full lives and a ready roll
// best may be nil when no records are kept
func NewPresenter(best BestScoreSource, log zerolog.Logger) *Presenter {
	p := &Presenter{
		log:     log.With().Str("component", "presenter").Logger(),
		best:    best,
		effects: engine.NewEffectSet(),
		misses:  make([]missLabel, 0, 8),
	}
	p.reset(constants.MaxLives)
	return p
}

func (p *Presenter) reset(lives int) {
	p.effects.CancelAll()
	p.lives = lives
	p.rebuildHearts()
	p.setCooldown(CooldownReady, 0)
	p.misses = p.misses[:0]
	p.comboVisible = false
	p.gameOver = GameOverView{}
}

// EventTypes returns the event types the presenter handles
func (p *Presenter) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRollStarted,
		events.EventRollEnded,
		events.EventCooldownProgress,
		events.EventRollReady,
		events.EventObstacleDodged,
		events.EventComboAwarded,
		events.EventPlayerHit,
		events.EventHealed,
		events.EventGameOverShown,
		events.EventGameRestarted,
	}
}

// HandleEvent applies one session event at game time now
func (p *Presenter) HandleEvent(now time.Time, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRollStarted:
		p.setCooldown(CooldownRolling, 0)

	case events.EventRollEnded:
		p.setCooldown(CooldownCooling, 0)

	case events.EventCooldownProgress:
		if payload, ok := ev.Payload.(*events.CooldownPayload); ok {
			p.setCooldown(CooldownCooling, payload.Progress)
		}

	case events.EventRollReady:
		p.setCooldown(CooldownReady, 0)

	case events.EventObstacleDodged:
		if payload, ok := ev.Payload.(*events.DodgePayload); ok {
			p.misses = append(p.misses, missLabel{
				label: FloatingLabel{
					Kind:    LabelMiss,
					Text:    constants.MissLabelText,
					X:       payload.X,
					Y:       payload.Y,
					Opacity: 1,
					Scale:   1,
				},
				originY: payload.Y,
			})
		}

	case events.EventComboAwarded:
		if payload, ok := ev.Payload.(*events.ComboPayload); ok {
			p.showCombo(now, payload)
		}

	case events.EventPlayerHit:
		if payload, ok := ev.Payload.(*events.LivesPayload); ok {
			// A break still in progress completes against the previous count
			if p.effects.Cancel(engine.EffectHeartBreak) {
				p.finishHeartBreak()
			}
			p.lives = payload.Lives
			p.breakHeart(now)
		}

	case events.EventHealed:
		if payload, ok := ev.Payload.(*events.LivesPayload); ok {
			p.lives = payload.Lives
			p.effects.Cancel(engine.EffectHeartBreak)
			p.rebuildHearts()
		}

	case events.EventGameOverShown:
		if payload, ok := ev.Payload.(*events.GameOverPayload); ok {
			p.showGameOver(payload)
		}

	case events.EventGameRestarted:
		lives := constants.MaxLives
		if payload, ok := ev.Payload.(*events.LivesPayload); ok {
			lives = payload.Lives
		}
		p.reset(lives)
	}
}

// Advance runs one frame of widget animation at game time now
func (p *Presenter) Advance(now time.Time) {
	for _, kind := range p.effects.Expire(now) {
		switch kind {
		case engine.EffectHeartBreak:
			p.finishHeartBreak()
		case engine.EffectComboLabel:
			p.comboVisible = false
		}
	}

	// Per-frame Miss ramps, removed once fully transparent
	kept := p.misses[:0]
	for _, m := range p.misses {
		m.age++
		m.label.Opacity = 1 - constants.MissOpacityStep*float64(m.age)
		m.label.Scale = math.Max(0, 1-constants.MissScaleStep*float64(m.age))
		m.label.Y = m.originY - constants.MissRiseStep*float64(m.age)
		if m.label.Opacity > 0 {
			kept = append(kept, m)
		}
	}
	p.misses = kept

	if e, ok := p.effects.Get(engine.EffectHeartBreak); ok && len(p.hearts) > 0 {
		last := &p.hearts[len(p.hearts)-1]
		if last.State == HeartBreaking {
			last.Progress = e.Progress(now)
		}
	}

	if e, ok := p.effects.Get(engine.EffectComboLabel); ok {
		fade := 1.0
		if elapsed := e.Elapsed(now); elapsed > constants.ComboLabelHold {
			fade = 1 - float64(elapsed-constants.ComboLabelHold)/float64(constants.ComboLabelFade)
			fade = math.Max(0, fade)
		}
		p.combo.Opacity = fade
		p.combo.Scale = fade
	}
}

// View returns the current presentation state
func (p *Presenter) View() View {
	p.view.Hearts = p.hearts
	p.view.Cooldown = p.cooldown
	p.view.Labels = p.view.Labels[:0]
	for _, m := range p.misses {
		p.view.Labels = append(p.view.Labels, m.label)
	}
	if p.comboVisible {
		p.view.Labels = append(p.view.Labels, p.combo)
	}
	p.view.GameOver = p.gameOver
	return p.view
}

// Lives returns the authoritative life count the presenter reconciles against
func (p *Presenter) Lives() int {
	return p.lives
}

func (p *Presenter) setCooldown(state CooldownState, progress float64) {
	progress = math.Max(0, math.Min(1, progress))
	c := CooldownView{State: state, Progress: progress, Fill: 1}
	switch state {
	case CooldownRolling:
		c.Text = constants.CooldownTextRolling
	case CooldownCooling:
		c.Fill = progress
		c.Text = fmt.Sprintf(constants.CooldownTextCooling, int(math.Round(progress*100)))
	default:
		c.Text = constants.CooldownTextReady
	}
	p.cooldown = c
}

// showCombo replaces any visible combo label and restarts its decay
func (p *Presenter) showCombo(now time.Time, payload *events.ComboPayload) {
	p.combo = FloatingLabel{
		Kind:    LabelCombo,
		Text:    fmt.Sprintf(constants.ComboLabelFormat, payload.Combo, payload.Points),
		X:       payload.X,
		Y:       payload.Y,
		Opacity: 1,
		Scale:   1,
	}
	p.comboVisible = true
	p.effects.Start(engine.EffectComboLabel, now, constants.ComboLabelHold+constants.ComboLabelFade)
}

// breakHeart starts the breaking transition on the last heart when more hearts are shown than lives remain
func (p *Presenter) breakHeart(now time.Time) {
	if len(p.hearts) == 0 || len(p.hearts) <= p.lives {
		return
	}
	p.hearts[len(p.hearts)-1] = Heart{State: HeartBreaking}
	p.effects.Start(engine.EffectHeartBreak, now, constants.HeartBreakTime)
}

// finishHeartBreak removes the breaking heart and reconciles the row with the authoritative lives
func (p *Presenter) finishHeartBreak() {
	if n := len(p.hearts); n > 0 && p.hearts[n-1].State == HeartBreaking {
		p.hearts = p.hearts[:n-1]
	}
	if len(p.hearts) != p.lives {
		p.log.Debug().Int("hearts", len(p.hearts)).Int("lives", p.lives).Msg("heart row reconciled")
		p.rebuildHearts()
	}
}

func (p *Presenter) rebuildHearts() {
	p.hearts = p.hearts[:0]
	for i := 0; i < p.lives; i++ {
		p.hearts = append(p.hearts, Heart{State: HeartFull})
	}
}

func (p *Presenter) showGameOver(payload *events.GameOverPayload) {
	best := 0
	if p.best != nil {
		best = p.best.Best()
	}
	p.gameOver = GameOverView{
		Visible:   true,
		Score:     payload.Score,
		BestScore: max(best, payload.Score),
		MaxCombo:  payload.MaxCombo,
		NewBest:   payload.Score > best,
	}
	p.log.Info().Int("score", payload.Score).Int("best", best).Bool("new_best", p.gameOver.NewBest).Msg("game over panel shown")
}
