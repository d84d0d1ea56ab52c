package constants

// --- Player ---
const (
	PlayerWidth  = 50.0
	PlayerHeight = 50.0

	// PlayerSpeed is the horizontal movement per tick in world units
	PlayerSpeed = 7.0

	// PlayerBottomMargin is the distance between the player top and the surface bottom
	PlayerBottomMargin = 100.0
)

// --- Obstacle ---
const (
	ObstacleSize = 30.0

	// ObstacleSpawnY places new obstacles just above the visible surface
	ObstacleSpawnY = -20.0
)

// --- Heal Item ---
const (
	HealSize = 30.0

	// HealSpawnY places new heal items one item height above the surface
	HealSpawnY = -HealSize
)
