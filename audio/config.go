package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv("PYRE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("PYRE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("PYRE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			// Map string keys to SoundType
			if v, ok := volumes["burst"]; ok {
				cfg.EffectVolumes[SoundBurst] = v
			}
			if v, ok := volumes["exhaust"]; ok {
				cfg.EffectVolumes[SoundExhaust] = v
			}
			if v, ok := volumes["crackle"]; ok {
				cfg.EffectVolumes[SoundCrackle] = v
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("PYRE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
