package parameter

import (
	"time"

	"github.com/lixenwraith/pyre/vmath"
)

// Emitter defaults
const (
	// EmitterFrequencyDefault is the interval between timed emission waves
	EmitterFrequencyDefault = 40 * time.Millisecond
	// EmitterQuantityDefault is particles spawned per wave
	EmitterQuantityDefault = 2
	// EmitterCapDefault bounds live particles per emitter; oldest are overwritten when full
	EmitterCapDefault = 1024

	// LifespanMinDefault/MaxDefault bound the sampled particle lifetime
	LifespanMinDefault = 800 * time.Millisecond
	LifespanMaxDefault = 2400 * time.Millisecond
)

// Particle kinetics
const (
	// ParticleMinSpeedFloat is minimum initial cell per second velocity at spawn
	ParticleMinSpeedFloat = 8.0
	// ParticleMaxSpeedFloat is maximum initial cell per second velocity at spawn
	ParticleMaxSpeedFloat = 15.0
	// ParticleMaxVelocityFloat caps velocity magnitude after field forces (cells/sec)
	ParticleMaxVelocityFloat = 120.0
)

// Field processor tuning
const (
	// WellGravityDefaultFloat matches the classic attractor feel; effective
	// power is the configured power multiplied by this
	WellGravityDefaultFloat = 50.0
	// WellEpsilonDefaultFloat is the distance (cells) below which the well
	// force stops growing; stored squared internally
	WellEpsilonDefaultFloat = 10.0

	// VortexStrengthDefaultFloat is tangential acceleration at the reference radius (cells/sec²)
	VortexStrengthDefaultFloat = 40.0
	// VortexRadiusDefaultFloat is the reference radius for swirl falloff (cells)
	VortexRadiusDefaultFloat = 8.0

	// DriftJitterDefaultFloat is random velocity added per second (cells/sec)
	DriftJitterDefaultFloat = 2.0
)

// Pre-computed Q32.32 versions
// Initialized once, used by hot loops to avoid repeated FromFloat calls
var (
	ParticleMinSpeed    = vmath.FromFloat(ParticleMinSpeedFloat)
	ParticleMaxSpeed    = vmath.FromFloat(ParticleMaxSpeedFloat)
	ParticleMaxVelocity = vmath.FromFloat(ParticleMaxVelocityFloat)

	WellGravityDefault = vmath.FromFloat(WellGravityDefaultFloat)
	WellEpsilonDefault = vmath.FromFloat(WellEpsilonDefaultFloat)

	VortexStrengthDefault = vmath.FromFloat(VortexStrengthDefaultFloat)
	VortexRadiusDefault   = vmath.FromFloat(VortexRadiusDefaultFloat)

	DriftJitterDefault = vmath.FromFloat(DriftJitterDefaultFloat)
)
