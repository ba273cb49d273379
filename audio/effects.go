package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/pyre/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		freqEnd:  freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

// NewSweepOscillator creates an oscillator whose pitch slides linearly
// from startFreq to endFreq over the duration
func NewSweepOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     startFreq,
		freqEnd:  endFreq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the instantaneous frequency
		freq := o.freq
		if o.freqEnd != o.freq && o.duration > 0 {
			freq += (o.freqEnd - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateBurstSound generates a falling zap for a manual particle burst
func CreateBurstSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweepOscillator(parameter.BurstStartFreq, parameter.BurstEndFreq, parameter.BurstSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BurstSoundDuration, parameter.BurstSoundAttack, parameter.BurstSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundBurst] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateExhaustSound generates a noise swell for an emitter running dry
func CreateExhaustSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ExhaustSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.ExhaustSoundDuration, parameter.ExhaustSoundAttack, parameter.ExhaustSoundRelease, rate)

	// Low rumble underneath the noise
	rumble := NewSweepOscillator(110.0, 55.0, parameter.ExhaustSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, parameter.ExhaustSoundDuration, parameter.ExhaustSoundAttack, parameter.ExhaustSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)

	vol := cfg.EffectVolumes[SoundExhaust] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateCrackleSound generates a short noise pop for dense spawn activity
func CreateCrackleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.CrackleSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.CrackleSoundDuration, parameter.CrackleSoundAttack, parameter.CrackleSoundRelease, rate)

	vol := parameter.CrackleIntensityFloat * cfg.EffectVolumes[SoundCrackle] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBurst:
		return CreateBurstSound(cfg)
	case SoundExhaust:
		return CreateExhaustSound(cfg)
	case SoundCrackle:
		return CreateCrackleSound(cfg)
	default:
		return nil
	}
}
