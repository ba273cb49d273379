package particle

import (
	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/vmath"
)

// GravityWell attracts particles toward a point with inverse-square falloff
// Acceleration saturates inside Epsilon so near-center velocities stay bounded
type GravityWell struct {
	ProcessorBase

	power   int64
	epsilon int64
	gravity int64

	// Derived: effPower = power*gravity, epsSq = epsilon^2
	// Setters keep these in sync
	effPower int64
	epsSq    int64
}

// NewGravityWell creates an attractor at a world position
// Gravity and epsilon start at package defaults
func NewGravityWell(m *Manager, x, y, power int64) *GravityWell {
	w := &GravityWell{
		ProcessorBase: NewProcessorBaseAt(m, x, y),
		gravity:       parameter.WellGravityDefault,
	}
	w.SetEpsilon(parameter.WellEpsilonDefault)
	w.SetPower(power)
	return w
}

// SetPower scales the attraction strength; effective power is power*gravity
func (w *GravityWell) SetPower(power int64) {
	w.power = power
	w.effPower = vmath.Mul(power, w.gravity)
}

func (w *GravityWell) Power() int64 {
	return w.power
}

// SetGravity adjusts the global multiplier applied to power
func (w *GravityWell) SetGravity(gravity int64) {
	w.gravity = gravity
	w.effPower = vmath.Mul(w.power, gravity)
}

func (w *GravityWell) Gravity() int64 {
	return w.gravity
}

// SetEpsilon sets the saturation distance in cells; stored squared
func (w *GravityWell) SetEpsilon(epsilon int64) {
	w.epsilon = epsilon
	w.epsSq = vmath.Mul(epsilon, epsilon)
}

func (w *GravityWell) Epsilon() int64 {
	return w.epsilon
}

// Update accelerates the particle toward the well center:
// a = effPower / max(dSq, epsSq) along the normalized offset
func (w *GravityWell) Update(p *Particle, delta, step int64) {
	dx := w.X - p.PreciseX
	dy := w.Y - p.PreciseY

	dSq := vmath.MagnitudeSq(dx, dy)
	if dSq == 0 {
		return
	}

	d := vmath.Sqrt(dSq)
	if d == 0 {
		return
	}
	if dSq < w.epsSq {
		dSq = w.epsSq
	}

	accel := vmath.Div(w.effPower, dSq)
	dirX := vmath.Div(dx, d)
	dirY := vmath.Div(dy, d)

	p.VelX += vmath.Mul(vmath.Mul(dirX, accel), step)
	p.VelY += vmath.Mul(vmath.Mul(dirY, accel), step)
}
