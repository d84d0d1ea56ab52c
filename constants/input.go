package constants

import "time"

// Held-key emulation
// Terminals report presses and auto-repeats only, a direction counts as held
// while its last press is younger than the hold window
const (
	DefaultHoldWindow = 150 * time.Millisecond
	MinHoldWindow     = 30 * time.Millisecond
	MaxHoldWindow     = time.Second
)
