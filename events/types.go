package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRollStarted marks entry into the rolling state
	// Trigger: Session.Update consuming a roll request
	// Consumer: Presenter (cooldown indicator), audio | Payload: nil
	EventRollStarted EventType = iota

	// EventRollEnded marks the end of the dodge window, cooldown keeps running
	// Trigger: roll effect expiry | Payload: nil
	EventRollEnded

	// EventCooldownProgress reports roll cooldown progress in fixed steps
	// Trigger: cooldown effect crossing a step boundary | Payload: *CooldownPayload
	EventCooldownProgress

	// EventRollReady signals the roll can be requested again
	// Trigger: cooldown effect expiry | Payload: nil
	EventRollReady

	// EventObstacleDodged signals a credited dodge during a roll
	// Consumer: Presenter (Miss label), audio | Payload: *DodgePayload
	EventObstacleDodged

	// EventComboAwarded signals combo increment and awarded points
	// Consumer: Presenter (combo label), audio | Payload: *ComboPayload
	EventComboAwarded

	// EventPlayerHit signals a damaging collision, doubles as heart-removal request
	// Consumer: Presenter (heart break), audio | Payload: *LivesPayload
	EventPlayerHit

	// EventHealed signals a heal pickup that restored a life
	// Consumer: Presenter (hearts rebuild), audio | Payload: *LivesPayload
	EventHealed

	// EventHealWasted signals a heal pickup at full life | Payload: *LivesPayload
	EventHealWasted

	// EventPlayerDied signals lives reaching zero and the start of the death sequence
	// Consumer: audio | Payload: *GameOverPayload
	EventPlayerDied

	// EventGameOverShown signals the delayed game-over reveal
	// Consumer: Presenter (panel), records keeper | Payload: *GameOverPayload
	EventGameOverShown

	// EventGameRestarted signals a freshly rebuilt session
	// Consumer: Presenter (reset widgets) | Payload: *LivesPayload
	EventGameRestarted

	// EventObstacleSpawned signals creation of an obstacle | Payload: *SpawnPayload
	EventObstacleSpawned

	// EventHealSpawned signals creation of a heal item | Payload: *SpawnPayload
	EventHealSpawned

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
