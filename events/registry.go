package events

var typeNames = [eventTypeCount]string{
	EventRollStarted:      "roll_started",
	EventRollEnded:        "roll_ended",
	EventCooldownProgress: "cooldown_progress",
	EventRollReady:        "roll_ready",
	EventObstacleDodged:   "obstacle_dodged",
	EventComboAwarded:     "combo_awarded",
	EventPlayerHit:        "player_hit",
	EventHealed:           "healed",
	EventHealWasted:       "heal_wasted",
	EventPlayerDied:       "player_died",
	EventGameOverShown:    "game_over_shown",
	EventGameRestarted:    "game_restarted",
	EventObstacleSpawned:  "obstacle_spawned",
	EventHealSpawned:      "heal_spawned",
}

// String returns the stable name of the event type, used in logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}
