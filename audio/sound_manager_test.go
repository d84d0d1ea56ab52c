package audio

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// TestSoundManagerGracefulDegradation verifies audio operations are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	for st := SoundType(0); st < soundTypeCount; st++ {
		if err := sm.Play(st); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized for %s, got %v", st, err)
		}
	}
	sm.Cleanup()
}

func TestSoundManagerUnknownSound(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())
	if err := sm.Play(soundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	if sm.IsMuted() {
		t.Fatal("Should start unmuted")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Fatal("Toggle should mute")
	}
	// Muted playback is dropped without error even without a device
	if err := sm.Play(SoundBell); err != nil {
		t.Errorf("Muted play should not fail, got %v", err)
	}
	sm.SetMuted(false)
	if sm.IsMuted() {
		t.Error("SetMuted(false) did not unmute")
	}
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialize should be a no-op, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Disabled manager reports initialized")
	}
}

// TestSoundManagerInitialization verifies init and cleanup where a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	// Speaker initialization fails in environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Cleanup should reset initialized")
	}
}
