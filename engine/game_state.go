package engine

import (
	"github.com/lixenwraith/rolldodge/constants"
)

// GameState is the per-session mutable record, rebuilt from scratch on restart
// Owned by the game loop goroutine, no locking
type GameState struct {
	// Scoring
	BaseScore  int // +1 per tick while not game over
	ComboScore int // Sum of combo awards
	Score      int // BaseScore + ComboScore, refreshed on every change

	// Lives, clamped to [0, MaxLives]
	Lives int

	// Lifecycle
	GameOver bool
	IsDying  bool

	// Roll
	CanRoll   bool
	IsRolling bool
	RollAngle float64 // Degrees in [0, 360), zero when not rolling

	// Damage overlays
	HitEffect    int // Flash intensity 0..HitFlashMax
	IsInvincible bool

	// Death animation
	DeathRotation float64 // Degrees, capped at DeathRotationMax
	SoulY         float64 // Rise offset, stops at SoulRiseMax

	// Idle animation
	IdleAnimation float64 // Phase in [0, 1]
	IdleDirection float64 // +1 or -1

	// Combo
	Combo    int
	MaxCombo int

	// Processed holds obstacle IDs credited during the current roll, empty when not rolling
	Processed map[uint64]struct{}
}

// NewGameState returns a fresh state with full lives and roll available
func NewGameState() *GameState {
	return &GameState{
		Lives:         constants.MaxLives,
		CanRoll:       true,
		IdleDirection: 1,
		Processed:     make(map[uint64]struct{}),
	}
}

// SetLives assigns lives clamped to [0, MaxLives]
func (gs *GameState) SetLives(n int) {
	if n < 0 {
		n = 0
	}
	if n > constants.MaxLives {
		n = constants.MaxLives
	}
	gs.Lives = n
}

// clearProcessed empties the dodge credit set in place
func (gs *GameState) clearProcessed() {
	for id := range gs.Processed {
		delete(gs.Processed, id)
	}
}

func (gs *GameState) refreshScore() {
	gs.Score = gs.BaseScore + gs.ComboScore
}
