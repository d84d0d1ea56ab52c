package engine

import (
	"time"

	"github.com/lixenwraith/rolldodge/constants"
)

// Tuning holds the gameplay values exposed through configuration
type Tuning struct {
	PlayerSpeed   float64
	RollDuration  time.Duration
	RollCooldown  time.Duration
	Invincibility time.Duration
}

// DefaultTuning returns the stock gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:   constants.PlayerSpeed,
		RollDuration:  constants.RollDuration,
		RollCooldown:  constants.RollCooldown,
		Invincibility: constants.InvincibilityDuration,
	}
}

// normalized replaces non-positive fields with defaults and keeps the cooldown no shorter than the roll
func (t Tuning) normalized() Tuning {
	d := DefaultTuning()
	if t.PlayerSpeed <= 0 {
		t.PlayerSpeed = d.PlayerSpeed
	}
	if t.RollDuration <= 0 {
		t.RollDuration = d.RollDuration
	}
	if t.RollCooldown <= 0 {
		t.RollCooldown = d.RollCooldown
	}
	if t.RollCooldown < t.RollDuration {
		t.RollCooldown = t.RollDuration
	}
	if t.Invincibility <= 0 {
		t.Invincibility = d.Invincibility
	}
	return t
}
