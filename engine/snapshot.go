package engine

import (
	"github.com/lixenwraith/rolldodge/components"
)

// Snapshot is a read-only copy of the session for the render stage
// Slices are reused across Fill calls
type Snapshot struct {
	SessionID string
	Width     float64
	Height    float64
	Frame     int64

	Player    components.PlayerComponent
	Obstacles []components.ObstacleComponent
	Heals     []components.HealComponent

	Score         int
	Lives         int
	Combo         int
	GameOver      bool
	IsDying       bool
	IsRolling     bool
	CanRoll       bool
	IsInvincible  bool
	RollAngle     float64
	HitEffect     int
	DeathRotation float64
	SoulY         float64
	FaceOffset    float64
	Cooldown      float64
}

// Fill copies the current session into dst
func (s *Session) Fill(dst *Snapshot) {
	gs := s.State
	dst.SessionID = s.ID
	dst.Width = s.width
	dst.Height = s.height
	dst.Frame = s.frame

	dst.Player = s.Player
	dst.Obstacles = append(dst.Obstacles[:0], s.Obstacles...)
	dst.Heals = append(dst.Heals[:0], s.Heals...)

	dst.Score = gs.Score
	dst.Lives = gs.Lives
	dst.Combo = gs.Combo
	dst.GameOver = gs.GameOver
	dst.IsDying = gs.IsDying
	dst.IsRolling = gs.IsRolling
	dst.CanRoll = gs.CanRoll
	dst.IsInvincible = gs.IsInvincible
	dst.RollAngle = gs.RollAngle
	dst.HitEffect = gs.HitEffect
	dst.DeathRotation = gs.DeathRotation
	dst.SoulY = gs.SoulY
	dst.FaceOffset = gs.FaceOffset()
	dst.Cooldown = s.CooldownProgress()
}
