package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
	AudioBitDepth   = 16
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Burst Sound
const (
	BurstSoundDuration = 120 * time.Millisecond
	BurstSoundAttack   = 2 * time.Millisecond
	BurstSoundRelease  = 90 * time.Millisecond
	BurstStartFreq     = 220.0 // Hz
	BurstEndFreq       = 60.0  // Hz
)

// Exhaust Sound, played when an emitter runs out of particles to emit
const (
	ExhaustSoundDuration = 300 * time.Millisecond
	ExhaustSoundAttack   = 150 * time.Millisecond
	ExhaustSoundRelease  = 150 * time.Millisecond
)

// Crackle Sound, short noise impulse for dense field interactions
const (
	CrackleSoundDuration  = 80 * time.Millisecond
	CrackleSoundAttack    = 5 * time.Millisecond
	CrackleSoundRelease   = 30 * time.Millisecond
	CrackleIntensityFloat = 0.3
)
