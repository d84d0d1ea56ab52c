package audio

import (
	"fmt"

	"github.com/lixenwraith/rolldodge/constants"
)

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundWhoosh: 0.6,
			SoundBell:   0.8,
			SoundChime:  0.7,
			SoundHit:    0.8,
			SoundCoin:   0.5,
			SoundDeath:  1.0,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// SetVolumes applies per-effect volumes keyed by sound name
func (c *AudioConfig) SetVolumes(volumes map[string]float64) error {
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSound, name)
		}
		c.EffectVolumes[st] = v
	}
	return nil
}

// Normalize clamps volumes to [0, 1] and restores defaults for missing values
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clampVolume(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
	if c.EffectVolumes == nil {
		c.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		v, ok := c.EffectVolumes[st]
		if !ok {
			v = 1
		}
		c.EffectVolumes[st] = clampVolume(v)
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
