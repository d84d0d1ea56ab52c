package constants

import "time"

// Game Loop Timing
const (
	// DefaultTickRate is the frame rate the update/render loop is driven at
	// Per-tick quantities (speeds, score accrual) are calibrated against it
	DefaultTickRate = 60

	// MinTickRate and MaxTickRate bound the configurable tick rate
	MinTickRate = 20
	MaxTickRate = 240

	// PausedPollInterval is the render interval while the game clock is frozen
	PausedPollInterval = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// InputChannelSize is the buffer between the terminal poller and the game loop
	InputChannelSize = 256
)
