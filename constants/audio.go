package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is used when no volume is configured
	DefaultMasterVolume = 0.7
)

// Roll Whoosh
const (
	WhooshSoundDuration = 250 * time.Millisecond
	WhooshSoundAttack   = 120 * time.Millisecond
	WhooshSoundRelease  = 130 * time.Millisecond
)

// Dodge Bell
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Hit Buzz
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Heal Coin
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Death Rumble
const (
	DeathSoundDuration = 700 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 550 * time.Millisecond
)

// Combo Chime
const (
	ChimeNoteDuration = 70 * time.Millisecond
	ChimeNoteAttack   = 3 * time.Millisecond
	ChimeNoteRelease  = 50 * time.Millisecond
)
