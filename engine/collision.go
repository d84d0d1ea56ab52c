package engine

import (
	"github.com/lixenwraith/rolldodge/components"
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/events"
)

// resolveObstacle applies the effect of an obstacle overlapping the player
// Returns true when the result is damaging and the obstacle must be removed
func (s *Session) resolveObstacle(o *components.ObstacleComponent) bool {
	pb := s.Player.Box()
	if !pb.Overlaps(o.Box()) {
		return false
	}

	gs := s.State
	if gs.IsRolling || gs.IsInvincible {
		if gs.IsRolling {
			if _, done := gs.Processed[o.ID]; !done {
				gs.Processed[o.ID] = struct{}{}
				s.creditDodge(o)
			}
		}
		return false
	}

	if !gs.IsDying {
		s.applyHit()
	}
	return true
}

// creditDodge spawns the Miss label intent and extends the combo
func (s *Session) creditDodge(o *components.ObstacleComponent) {
	pb := s.Player.Box()
	s.emit(events.EventObstacleDodged, &events.DodgePayload{
		ObstacleID: o.ID,
		X:          pb.CenterX(),
		Y:          pb.Y,
	})

	combo, points := s.State.AddCombo()
	s.emit(events.EventComboAwarded, &events.ComboPayload{
		Combo:  combo,
		Points: points,
		X:      pb.CenterX(),
		Y:      pb.Y,
	})
}

// applyHit takes one life and starts the damage overlays
func (s *Session) applyHit() {
	gs := s.State
	gs.BreakCombo()
	gs.SetLives(gs.Lives - 1)

	gs.HitEffect = constants.HitFlashMax
	gs.IsInvincible = true
	s.effects.Start(EffectHitFlash, s.now, constants.HitFlashDuration)
	s.effects.Start(EffectInvincibility, s.now, s.tuning.Invincibility)

	s.emit(events.EventPlayerHit, &events.LivesPayload{Lives: gs.Lives})
	s.log.Debug().Int("lives", gs.Lives).Int64("frame", s.frame).Msg("player hit")

	if gs.Lives == 0 {
		s.triggerDeath()
	}
}

// triggerDeath enters the dying sequence, runs at most once per session
func (s *Session) triggerDeath() {
	gs := s.State
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	gs.IsDying = true

	// Only the reveal survives game over
	s.effects.CancelAll()
	gs.IsRolling = false
	gs.clearProcessed()
	gs.IsInvincible = false
	gs.HitEffect = constants.HitFlashMax
	s.effects.Start(EffectHitFlash, s.now, constants.HitFlashDuration)
	s.effects.Start(EffectGameOverReveal, s.now, constants.GameOverRevealDelay)

	s.emit(events.EventPlayerDied, s.results())
	s.log.Info().
		Str("session", s.ID).
		Int("score", gs.Score).
		Int("max_combo", gs.MaxCombo).
		Int64("ticks", s.frame).
		Msg("player died")
}

// resolveHeal applies a heal pickup, returns true when the item overlapped and must be removed
func (s *Session) resolveHeal(h *components.HealComponent) bool {
	if !s.Player.Box().Overlaps(h.Box()) {
		return false
	}
	gs := s.State
	if gs.Lives < constants.MaxLives && !gs.IsDying {
		gs.SetLives(gs.Lives + 1)
		s.emit(events.EventHealed, &events.LivesPayload{Lives: gs.Lives})
	} else {
		s.emit(events.EventHealWasted, &events.LivesPayload{Lives: gs.Lives})
	}
	return true
}

func (s *Session) results() *events.GameOverPayload {
	return &events.GameOverPayload{
		SessionID: s.ID,
		Score:     s.State.Score,
		MaxCombo:  s.State.MaxCombo,
		Ticks:     s.frame,
	}
}
