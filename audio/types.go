package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhoosh SoundType = iota // Roll start
	SoundBell                    // Credited dodge
	SoundChime                   // Combo streak of two or more
	SoundHit                     // Damaging collision
	SoundCoin                    // Heal pickup
	SoundDeath                   // Last life lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"whoosh", "bell", "chime", "hit", "coin", "death"}

// String returns the config name of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a config name to its sound type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
