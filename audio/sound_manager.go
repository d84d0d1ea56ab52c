package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rolldodge/constants"
)

// SoundManager owns the speaker and plays one-shot effects
// All methods are safe to call without a working audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         zerolog.Logger
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	return &SoundManager{
		cfg: cfg,
		log: log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker, a disabled config leaves the manager uninitialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play starts a one-shot effect, a muted manager drops it silently
func (sm *SoundManager) Play(st SoundType) error {
	if st < 0 || st >= soundTypeCount {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return nil
	}
	if !sm.initialized {
		return ErrNotInitialized
	}

	speaker.Play(GetSoundEffect(st, sm.cfg))
	return nil
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Clear()
	}
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
