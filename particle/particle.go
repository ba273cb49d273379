package particle

import (
	"github.com/lixenwraith/pyre/core"
)

// Particle is the per-instance simulated entity handed to processors
// Kinetic state is Q32.32; life counts down in milliseconds
type Particle struct {
	core.Kinetic

	// Life remaining and the sampled total, milliseconds
	Life     int64
	Lifespan int64

	// Rune drawn by frontends
	Rune rune

	// LastIntX and LastIntY track the integer cell for change detection
	LastIntX int
	LastIntY int
}

// Alive reports whether the particle has life remaining
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// LifeFrac returns elapsed life as [0, 1]: 0 at spawn, 1 at expiry
// Ramp input for color fades
func (p *Particle) LifeFrac() float64 {
	if p.Lifespan <= 0 {
		return 1
	}
	f := 1 - float64(p.Life)/float64(p.Lifespan)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
