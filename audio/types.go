package audio

import (
	"github.com/lixenwraith/pyre/parameter"
)

// SoundType represents different field sound effects
type SoundType int

const (
	SoundBurst   SoundType = iota // Manual particle burst
	SoundExhaust                  // Emitter budget exhausted
	SoundCrackle                  // Dense spawn activity
	soundTypeCount
)

// AudioConfig holds runtime audio settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.8,
		EffectVolumes: map[SoundType]float64{
			SoundBurst:   1.0,
			SoundExhaust: 0.7,
			SoundCrackle: 0.5,
		},
	}
}
