package engine

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/rolldodge/components"
	"github.com/lixenwraith/rolldodge/constants"
)

// ObstacleSpawnChance returns the per-tick obstacle probability for a base score, saturating at 10%
func ObstacleSpawnChance(baseScore int) float64 {
	extra := float64(baseScore) / constants.ObstacleSpawnScoreDivisor
	if extra > constants.ObstacleExtraSpawnChanceMax {
		extra = constants.ObstacleExtraSpawnChanceMax
	}
	if extra < 0 {
		extra = 0
	}
	return constants.ObstacleBaseSpawnChance + extra
}

// ObstacleSpeed returns the fall speed for a base score, one unit faster every 2000 points, unbounded
func ObstacleSpeed(baseScore int) float64 {
	if baseScore < 0 {
		baseScore = 0
	}
	return constants.ObstacleBaseSpeed + math.Floor(float64(baseScore)/constants.ObstacleSpeedScoreStep)
}

// spawnX picks a left edge in [0, width-size)
func spawnX(rng *rand.Rand, width, size float64) float64 {
	span := width - size
	if span <= 0 {
		return 0
	}
	return rng.Float64() * span
}

// maybeSpawnObstacle rolls the per-tick obstacle chance and appends on success
func (s *Session) maybeSpawnObstacle() (components.ObstacleComponent, bool) {
	if s.rng.Float64() >= ObstacleSpawnChance(s.State.BaseScore) {
		return components.ObstacleComponent{}, false
	}
	o := components.ObstacleComponent{
		ID:     s.allocID(),
		X:      spawnX(s.rng, s.width, constants.ObstacleSize),
		Y:      constants.ObstacleSpawnY,
		Width:  constants.ObstacleSize,
		Height: constants.ObstacleSize,
		Speed:  ObstacleSpeed(s.State.BaseScore),
	}
	s.Obstacles = append(s.Obstacles, o)
	return o, true
}

// maybeSpawnHeal rolls the fixed heal chance and appends on success
func (s *Session) maybeSpawnHeal() (components.HealComponent, bool) {
	if s.rng.Float64() >= constants.HealSpawnChance {
		return components.HealComponent{}, false
	}
	h := components.HealComponent{
		ID:     s.allocID(),
		X:      spawnX(s.rng, s.width, constants.HealSize),
		Y:      constants.HealSpawnY,
		Width:  constants.HealSize,
		Height: constants.HealSize,
		Speed:  constants.HealSpeed,
	}
	s.Heals = append(s.Heals, h)
	return h, true
}

// SpawnObstacle inserts an obstacle at an explicit position, used by scripted scenarios and tests
func (s *Session) SpawnObstacle(x, y, speed float64) uint64 {
	o := components.ObstacleComponent{
		ID:     s.allocID(),
		X:      x,
		Y:      y,
		Width:  constants.ObstacleSize,
		Height: constants.ObstacleSize,
		Speed:  speed,
	}
	s.Obstacles = append(s.Obstacles, o)
	return o.ID
}

// SpawnHeal inserts a heal item at an explicit position
func (s *Session) SpawnHeal(x, y float64) uint64 {
	h := components.HealComponent{
		ID:     s.allocID(),
		X:      x,
		Y:      y,
		Width:  constants.HealSize,
		Height: constants.HealSize,
		Speed:  constants.HealSpeed,
	}
	s.Heals = append(s.Heals, h)
	return h.ID
}

func (s *Session) allocID() uint64 {
	s.nextID++
	return s.nextID
}
