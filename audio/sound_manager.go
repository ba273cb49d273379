package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pyre/parameter"
)

// SoundManager owns the speaker and mixes field sound effects
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
}

// NewSoundManager creates a sound manager, loading configuration from
// the environment when none is given
func NewSoundManager(cfg ...*AudioConfig) *SoundManager {
	config := LoadAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}
	return &SoundManager{
		cfg:   config,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	rate := beep.SampleRate(sm.cfg.SampleRate)
	err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and silences the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// Ready reports whether the speaker is initialized and accepting sounds
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume adjusts the master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	sm.cfg.MasterVolume = vol
}

// Play queues a one-shot sound effect, dropping it when the previous
// one of the same type landed closer than MinSoundGap
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if soundType < 0 || soundType >= soundTypeCount {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastPlayed[soundType]) < parameter.MinSoundGap {
		return
	}
	sm.lastPlayed[soundType] = now

	if sound := GetSoundEffect(soundType, sm.cfg); sound != nil {
		sm.mixer.Add(sound)
	}
}

// PlayBurst plays the falling zap of a manual burst
func (sm *SoundManager) PlayBurst() {
	sm.Play(SoundBurst)
}

// PlayExhaust plays the swell of an emitter running dry
func (sm *SoundManager) PlayExhaust() {
	sm.Play(SoundExhaust)
}

// PlayCrackle plays a short pop for dense spawns
func (sm *SoundManager) PlayCrackle() {
	sm.Play(SoundCrackle)
}
