package input

import (
	"time"

	"github.com/lixenwraith/rolldodge/constants"
)

// HeldKeys emulates level-triggered direction keys from press and auto-repeat timestamps
// A direction counts as held while its last press is younger than the hold window
type HeldKeys struct {
	window    time.Duration
	leftAt    time.Time
	rightAt   time.Time
	rollQueue bool // Press edge, consumed by the next sample
}

// NewHeldKeys creates key state with the given hold window, clamped to the supported range
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = constants.DefaultHoldWindow
	}
	window = min(max(window, constants.MinHoldWindow), constants.MaxHoldWindow)
	return &HeldKeys{window: window}
}

// Window returns the effective hold window
func (h *HeldKeys) Window() time.Duration {
	return h.window
}

// PressLeft records a left press, releasing right
func (h *HeldKeys) PressLeft(now time.Time) {
	h.leftAt = now
	h.rightAt = time.Time{}
}

// PressRight records a right press, releasing left
func (h *HeldKeys) PressRight(now time.Time) {
	h.rightAt = now
	h.leftAt = time.Time{}
}

// PressRoll queues a roll edge
func (h *HeldKeys) PressRoll() {
	h.rollQueue = true
}

func (h *HeldKeys) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) < h.window
}

// Left reports whether left counts as held at now
func (h *HeldKeys) Left(now time.Time) bool {
	return h.held(h.leftAt, now)
}

// Right reports whether right counts as held at now
func (h *HeldKeys) Right(now time.Time) bool {
	return h.held(h.rightAt, now)
}

// TakeRoll consumes the pending roll edge
func (h *HeldKeys) TakeRoll() bool {
	r := h.rollQueue
	h.rollQueue = false
	return r
}

// Reset releases every key and drops a pending roll
func (h *HeldKeys) Reset() {
	h.leftAt = time.Time{}
	h.rightAt = time.Time{}
	h.rollQueue = false
}
