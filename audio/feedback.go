package audio

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/events"
)

// Player plays one-shot effects
type Player interface {
	Play(st SoundType) error
}

// Feedback maps session events to sound effects
type Feedback struct {
	player Player
	log    zerolog.Logger

	// Reported once, an absent device is not an error worth repeating
	warnedInit bool
}

// NewFeedback creates an event handler playing through player
func NewFeedback(player Player, log zerolog.Logger) *Feedback {
	return &Feedback{
		player: player,
		log:    log.With().Str("component", "audio_feedback").Logger(),
	}
}

// EventTypes implements events.Handler
func (f *Feedback) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRollStarted,
		events.EventObstacleDodged,
		events.EventComboAwarded,
		events.EventPlayerHit,
		events.EventHealed,
		events.EventPlayerDied,
	}
}

// HandleEvent implements events.Handler
func (f *Feedback) HandleEvent(_ time.Time, ev events.GameEvent) {
	st, ok := soundFor(ev)
	if !ok {
		return
	}

	err := f.player.Play(st)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotInitialized):
		if !f.warnedInit {
			f.warnedInit = true
			f.log.Debug().Msg("audio unavailable, effects dropped")
		}
	default:
		f.log.Warn().Err(err).Stringer("sound", st).Msg("play failed")
	}
}

func soundFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventRollStarted:
		return SoundWhoosh, true
	case events.EventObstacleDodged:
		return SoundBell, true
	case events.EventComboAwarded:
		// A single dodge is covered by the bell
		if p, ok := ev.Payload.(*events.ComboPayload); ok && p.Combo >= 2 {
			return SoundChime, true
		}
	case events.EventPlayerHit:
		// The final hit plays the death sound instead
		if p, ok := ev.Payload.(*events.LivesPayload); ok && p.Lives > 0 {
			return SoundHit, true
		}
	case events.EventHealed:
		return SoundCoin, true
	case events.EventPlayerDied:
		return SoundDeath, true
	}
	return 0, false
}
