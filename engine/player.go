package engine

import (
	"math"

	"github.com/lixenwraith/rolldodge/components"
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/events"
)

// newPlayer places the player horizontally centred above the bottom margin
func newPlayer(width, height, speed float64) components.PlayerComponent {
	p := components.PlayerComponent{
		Width:     constants.PlayerWidth,
		Height:    constants.PlayerHeight,
		Speed:     speed,
		Direction: 1,
	}
	p.X = math.Max(0, (width-p.Width)/2)
	p.Y = playerY(height)
	return p
}

func playerY(height float64) float64 {
	return math.Max(0, height-constants.PlayerBottomMargin)
}

// movePlayer applies level-triggered horizontal input, left checked first
func (s *Session) movePlayer(in Input) {
	p := &s.Player
	maxX := math.Max(0, s.width-p.Width)
	switch {
	case in.Left:
		p.X = math.Max(0, p.X-p.Speed)
		p.Direction = -1
		p.IsMoving = true
	case in.Right:
		p.X = math.Min(maxX, p.X+p.Speed)
		p.Direction = 1
		p.IsMoving = true
	default:
		p.IsMoving = false
	}
}

// advanceIdle reflects the idle phase inside [0, 1]
func (s *Session) advanceIdle() {
	gs := s.State
	if gs.IsRolling || s.Player.IsMoving {
		return
	}
	gs.IdleAnimation += constants.IdlePhaseStep * gs.IdleDirection
	if gs.IdleAnimation > 1 {
		gs.IdleAnimation = 1
		gs.IdleDirection = -1
	} else if gs.IdleAnimation < 0 {
		gs.IdleAnimation = 0
		gs.IdleDirection = 1
	}
}

// FaceOffset returns the idle face displacement in world units
func (gs *GameState) FaceOffset() float64 {
	return math.Sin(gs.IdleAnimation*math.Pi) * constants.IdleFaceAmplitude
}

// advanceRoll spins the body while rolling, steered by held keys, right checked first
func (s *Session) advanceRoll(in Input) {
	gs := s.State
	if !gs.IsRolling {
		gs.RollAngle = 0
		return
	}
	p := &s.Player
	switch {
	case in.Right:
		gs.RollAngle += constants.RollAngularSpeed
		p.Direction = 1
	case in.Left:
		gs.RollAngle -= constants.RollAngularSpeed
		p.Direction = -1
	default:
		gs.RollAngle += constants.RollAngularSpeed * float64(p.Direction)
	}
	gs.RollAngle = math.Mod(gs.RollAngle, 360)
	if gs.RollAngle < 0 {
		gs.RollAngle += 360
	}
}

// startRoll enters the rolling state if allowed, returns false when gated
func (s *Session) startRoll() bool {
	gs := s.State
	if !gs.CanRoll || gs.IsRolling || gs.GameOver {
		return false
	}
	gs.IsRolling = true
	gs.CanRoll = false
	gs.clearProcessed()
	s.effects.Start(EffectRoll, s.now, s.tuning.RollDuration)
	s.effects.Start(EffectRollCooldown, s.now, s.tuning.RollCooldown)
	s.cooldownStep = 0
	s.emit(events.EventRollStarted, nil)
	return true
}

// endRoll closes the dodge window, the cooldown keeps running
func (s *Session) endRoll() {
	gs := s.State
	if !gs.IsRolling {
		return
	}
	gs.IsRolling = false
	gs.RollAngle = 0
	gs.clearProcessed()
	s.emit(events.EventRollEnded, nil)
}

// finishCooldown makes the roll available again
func (s *Session) finishCooldown() {
	gs := s.State
	if gs.CanRoll || gs.GameOver {
		return
	}
	gs.CanRoll = true
	s.emit(events.EventRollReady, nil)
}

// reportCooldown emits progress once per step boundary crossed, silent while the roll is active
func (s *Session) reportCooldown() {
	e, ok := s.effects.Get(EffectRollCooldown)
	if !ok || s.State.IsRolling {
		return
	}
	step := int(e.Elapsed(s.now) / constants.RollCooldownStep)
	if step <= s.cooldownStep {
		return
	}
	s.cooldownStep = step
	s.emit(events.EventCooldownProgress, &events.CooldownPayload{Progress: e.Progress(s.now)})
}

// refreshHitFlash derives flash intensity from the single time-based decay schedule
func (s *Session) refreshHitFlash() {
	e, ok := s.effects.Get(EffectHitFlash)
	if !ok {
		s.State.HitEffect = 0
		return
	}
	steps := int(e.Elapsed(s.now) / constants.HitFlashStep)
	s.State.HitEffect = max(0, constants.HitFlashMax-constants.HitFlashDecay*steps)
}

// advanceDeath runs one tick of the death animation
func (s *Session) advanceDeath() {
	gs := s.State
	if !gs.IsDying {
		return
	}
	if gs.DeathRotation < constants.DeathRotationMax {
		gs.DeathRotation = math.Min(constants.DeathRotationMax, gs.DeathRotation+constants.DeathRotationSpeed)
	}
	if gs.SoulY < constants.SoulRiseMax {
		gs.SoulY = math.Min(constants.SoulRiseMax, gs.SoulY+constants.SoulRiseSpeed)
	}
}

// DeathAnimating reports whether the death animation still has frames to play
func (gs *GameState) DeathAnimating() bool {
	return gs.IsDying && (gs.DeathRotation < constants.DeathRotationMax || gs.SoulY < constants.SoulRiseMax)
}
