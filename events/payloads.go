package events

// CooldownPayload carries roll cooldown progress in [0, 1]
type CooldownPayload struct {
	Progress float64
}

// DodgePayload anchors the Miss label at world coordinates
type DodgePayload struct {
	ObstacleID uint64
	X, Y       float64
}

// ComboPayload carries the streak length and the points it awarded
type ComboPayload struct {
	Combo  int
	Points int
	X, Y   float64
}

// LivesPayload carries the authoritative life count after the change
type LivesPayload struct {
	Lives int
}

// GameOverPayload carries final session results
type GameOverPayload struct {
	SessionID string
	Score     int
	MaxCombo  int
	Ticks     int64
}

// SpawnPayload identifies a spawned entity
type SpawnPayload struct {
	ID    uint64
	X     float64
	Speed float64
}
