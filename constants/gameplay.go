package constants

import "time"

// Lives
const (
	// MaxLives is the life cap; heal pickups at this value are wasted
	MaxLives = 3
)

// Roll Mechanics
const (
	// RollDuration is how long a roll grants dodge credit
	RollDuration = 500 * time.Millisecond

	// RollCooldown is measured from roll start until the next roll is allowed
	RollCooldown = 3000 * time.Millisecond

	// RollCooldownStep is the granularity of cooldown progress reports
	RollCooldownStep = 100 * time.Millisecond

	// RollAngularSpeed is the roll rotation per tick in degrees
	RollAngularSpeed = 20.0
)

// Damage Feedback
const (
	// InvincibilityDuration is the post-hit window during which obstacles cannot damage
	InvincibilityDuration = 1000 * time.Millisecond

	// HitFlashMax is the flash intensity set on damage
	HitFlashMax = 100

	// HitFlashDecay is the intensity removed per HitFlashStep
	HitFlashDecay = 5

	// HitFlashStep is the single authoritative decay schedule for the flash
	HitFlashStep = 16 * time.Millisecond

	// HitFlashDuration is the time the flash needs to decay to zero (20 steps)
	HitFlashDuration = HitFlashStep * (HitFlashMax / HitFlashDecay)
)

// Death Sequence
const (
	// DeathRotationSpeed is the body rotation per tick in degrees
	DeathRotationSpeed = 5.0

	// DeathRotationMax caps the body rotation
	DeathRotationMax = 90.0

	// SoulRiseSpeed is the soul marker rise per tick in world units
	SoulRiseSpeed = 2.0

	// SoulRiseMax ends the soul animation once reached
	SoulRiseMax = 100.0

	// GameOverRevealDelay is the time between death and the game-over panel
	GameOverRevealDelay = 1000 * time.Millisecond
)

// Idle Animation
const (
	// IdlePhaseStep is the phase advance per tick while idle
	IdlePhaseStep = 0.02

	// IdleFaceAmplitude is the maximum face offset in world units
	IdleFaceAmplitude = 5.0
)

// Scoring
const (
	// ComboPointsPerStep is multiplied by the streak length for each credited dodge
	ComboPointsPerStep = 500
)

// Spawning
const (
	// ObstacleBaseSpawnChance is the per-tick spawn probability at score zero
	ObstacleBaseSpawnChance = 0.02

	// ObstacleExtraSpawnChanceMax caps the score-driven spawn bonus (10% total)
	ObstacleExtraSpawnChanceMax = 0.08

	// ObstacleSpawnScoreDivisor converts base score into extra spawn chance
	ObstacleSpawnScoreDivisor = 50000.0

	// ObstacleBaseSpeed is the fall speed at score zero in units per tick
	ObstacleBaseSpeed = 3.0

	// ObstacleSpeedScoreStep adds one unit of fall speed per this many base points
	ObstacleSpeedScoreStep = 2000

	// HealSpawnChance is the per-tick heal spawn probability (0.05%)
	HealSpawnChance = 0.0005

	// HealSpeed is the fixed heal fall speed in units per tick
	HealSpeed = 4.0
)
