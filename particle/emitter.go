package particle

import (
	"time"

	"github.com/lixenwraith/pyre/core"
	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/parameter/visual"
	"github.com/lixenwraith/pyre/physics"
	"github.com/lixenwraith/pyre/vmath"
)

// EmitterConfig describes one particle source
// Zero values fall back to parameter defaults in NewEmitter
type EmitterConfig struct {
	// X, Y is the emission origin, Q32.32 cells
	X, Y int64

	// Zone samples spawn offsets from the origin; nil emits at the point
	Zone Zone

	// SpeedMin, SpeedMax bound initial speed, cells/sec
	SpeedMin, SpeedMax int64

	// AngleMin, AngleMax bound emission direction, 0..Scale = full turn
	// Both zero selects the full circle
	AngleMin, AngleMax int64

	// LifespanMin, LifespanMax bound sampled particle lifetime
	LifespanMin, LifespanMax time.Duration

	// Frequency is the interval between timed waves; negative disables
	// timed flow entirely (burst-only emitter)
	Frequency time.Duration

	// Quantity is particles per wave
	Quantity int

	// Budget caps total particles ever emitted; zero means unbounded
	Budget int

	// Cap bounds live particles; oldest are overwritten when full
	Cap int

	// Runes are glyph choices sampled per spawn
	Runes []rune

	// Ramp colors particles over their life
	Ramp core.Ramp

	// Bounce reflects particles at field bounds instead of letting them exit
	Bounce bool

	// Seed fixes the sampling sequence; zero seeds from the clock
	Seed uint64
}

// Emitter spawns and advances particles from one origin
// Not safe for concurrent use; the owning manager serializes access
type Emitter struct {
	cfg EmitterConfig
	id  uint32

	particles []Particle
	ovrIdx    int // circular overwrite index when at cap

	rng *vmath.FastRand

	accum     time.Duration
	remaining int // budget left; -1 = unbounded
	exhausted bool
	notified  bool // manager pushed the exhaustion event
}

// NewEmitter creates an emitter, applying parameter defaults for zero fields
func NewEmitter(cfg EmitterConfig) *Emitter {
	if cfg.Cap <= 0 {
		cfg.Cap = parameter.EmitterCapDefault
	}
	if cfg.Quantity <= 0 {
		cfg.Quantity = parameter.EmitterQuantityDefault
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = parameter.EmitterFrequencyDefault
	}
	if cfg.SpeedMin == 0 && cfg.SpeedMax == 0 {
		cfg.SpeedMin = parameter.ParticleMinSpeed
		cfg.SpeedMax = parameter.ParticleMaxSpeed
	}
	if cfg.LifespanMin == 0 && cfg.LifespanMax == 0 {
		cfg.LifespanMin = parameter.LifespanMinDefault
		cfg.LifespanMax = parameter.LifespanMaxDefault
	}
	if cfg.LifespanMax < cfg.LifespanMin {
		cfg.LifespanMax = cfg.LifespanMin
	}
	if cfg.AngleMin == 0 && cfg.AngleMax == 0 {
		cfg.AngleMax = vmath.Scale
	}
	if len(cfg.Runes) == 0 {
		cfg.Runes = visual.DefaultRunes
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	remaining := -1
	if cfg.Budget > 0 {
		remaining = cfg.Budget
	}

	e := &Emitter{
		cfg:       cfg,
		particles: make([]Particle, 0, cfg.Cap),
		rng:       vmath.NewFastRand(cfg.Seed),
		remaining: remaining,
	}
	// First wave fires on the first update
	if cfg.Frequency > 0 {
		e.accum = cfg.Frequency
	}
	return e
}

// ID returns the manager-assigned identifier (zero before adoption)
func (e *Emitter) ID() uint32 {
	return e.id
}

// Len returns the live particle count
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Exhausted reports whether a bounded emitter has spent its budget
func (e *Emitter) Exhausted() bool {
	return e.exhausted
}

// Origin returns the emission origin
func (e *Emitter) Origin() (x, y int64) {
	return e.cfg.X, e.cfg.Y
}

// SetOrigin moves the emission origin (tracking emitters)
func (e *Emitter) SetOrigin(x, y int64) {
	e.cfg.X = x
	e.cfg.Y = y
}

// Ramp returns the configured color ramp
func (e *Emitter) Ramp() core.Ramp {
	return e.cfg.Ramp
}

// SpawnDue advances the emission accumulator and spawns due waves
// Returns particles spawned this frame
func (e *Emitter) SpawnDue(dt time.Duration) int {
	if e.cfg.Frequency <= 0 || e.exhausted {
		return 0
	}

	e.accum += dt
	n := 0
	for e.accum >= e.cfg.Frequency {
		e.accum -= e.cfg.Frequency
		n += e.emitWave(e.cfg.Quantity, e.cfg.X, e.cfg.Y)
		if e.exhausted {
			break
		}
	}
	return n
}

// Explode spawns an immediate burst at a point, bypassing the accumulator
// Respects the emission budget; returns particles actually spawned
func (e *Emitter) Explode(count int, x, y int64) int {
	return e.emitWave(count, x, y)
}

func (e *Emitter) emitWave(count int, x, y int64) int {
	if e.remaining == 0 {
		return 0
	}
	if e.remaining > 0 && count > e.remaining {
		count = e.remaining
	}

	for i := 0; i < count; i++ {
		e.spawnOne(x, y)
	}

	if e.remaining > 0 {
		e.remaining -= count
		if e.remaining == 0 {
			e.exhausted = true
		}
	}
	return count
}

func (e *Emitter) spawnOne(x, y int64) {
	var dx, dy int64
	if e.cfg.Zone != nil {
		dx, dy = e.cfg.Zone.Sample(e.rng)
	}

	angle := e.rng.Range(e.cfg.AngleMin, e.cfg.AngleMax)
	ux, uy := vmath.UnitFromAngle(angle)
	speed := e.rng.Range(e.cfg.SpeedMin, e.cfg.SpeedMax)
	vx, vy := vmath.ScaleVector(ux, uy, speed)

	life := e.rng.Range(e.cfg.LifespanMin.Milliseconds(), e.cfg.LifespanMax.Milliseconds())

	p := Particle{
		Kinetic: core.Kinetic{
			PreciseX: x + dx,
			PreciseY: y + dy,
		},
		Life:     life,
		Lifespan: life,
		Rune:     e.cfg.Runes[e.rng.Intn(len(e.cfg.Runes))],
	}
	physics.SetImpulse(&p.Kinetic, vx, vy)
	p.LastIntX, p.LastIntY = physics.GridPos(&p.Kinetic)
	e.add(p)
}

// add appends, or circularly overwrites the oldest slots when at cap
func (e *Emitter) add(p Particle) {
	if len(e.particles) < e.cfg.Cap {
		e.particles = append(e.particles, p)
		return
	}
	if e.ovrIdx >= len(e.particles) {
		e.ovrIdx = 0
	}
	e.particles[e.ovrIdx] = p
	e.ovrIdx++
}

// Advance integrates kinetics and expires particles
// delta is elapsed ms, step the same interval in Q32.32 seconds; width and
// height bound reflection when Bounce is set. Returns particles expired
func (e *Emitter) Advance(delta, step int64, width, height int) int {
	expired := 0
	for i := 0; i < len(e.particles); i++ {
		p := &e.particles[i]

		p.VelX, p.VelY = vmath.ClampMagnitude(p.VelX, p.VelY, parameter.ParticleMaxVelocity)
		physics.Integrate(&p.Kinetic, step)

		if e.cfg.Bounce && width > 0 && height > 0 {
			physics.ReflectBounds(&p.Kinetic, width, height)
		}

		p.LastIntX, p.LastIntY = physics.GridPos(&p.Kinetic)

		p.Life -= delta
		if p.Life <= 0 {
			// Swap-remove; re-examine the swapped-in slot
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles = e.particles[:last]
			if e.ovrIdx > last {
				e.ovrIdx = 0
			}
			expired++
			i--
		}
	}
	return expired
}

// ForEachAlive passes a pointer to each live particle
// Pointers are valid only within the callback; spawn and expiry reshuffle the slice
func (e *Emitter) ForEachAlive(fn func(p *Particle)) {
	for i := range e.particles {
		fn(&e.particles[i])
	}
}
