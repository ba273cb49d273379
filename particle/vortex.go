package particle

import (
	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/vmath"
)

// Vortex swirls particles around a point
// Tangential acceleration is Strength*Radius/(Radius+d): full strength at
// the center, hyperbolic falloff outward. Pull counters outward radial
// drift so captured particles settle into orbit
type Vortex struct {
	ProcessorBase

	// Strength is tangential acceleration at the center, cells/sec^2
	Strength int64

	// Radius is the falloff knee in Q32.32 cells
	Radius int64

	// Pull scales the correction against outward radial drift, 1/sec;
	// zero for pure swirl
	Pull int64

	// Clockwise flips swirl direction
	Clockwise bool
}

// NewVortex creates a counter-clockwise swirl with default strength and radius
func NewVortex(m *Manager, x, y int64) *Vortex {
	return &Vortex{
		ProcessorBase: NewProcessorBaseAt(m, x, y),
		Strength:      parameter.VortexStrengthDefault,
		Radius:        parameter.VortexRadiusDefault,
	}
}

// Update applies the tangential swirl and damps outward radial drift
func (v *Vortex) Update(p *Particle, delta, step int64) {
	dx := v.X - p.PreciseX
	dy := v.Y - p.PreciseY

	d := vmath.Magnitude(dx, dy)
	if d == 0 {
		return
	}

	rx := vmath.Div(dx, d)
	ry := vmath.Div(dy, d)
	tx, ty := vmath.Perpendicular(rx, ry)
	if v.Clockwise {
		tx, ty = -tx, -ty
	}

	accel := vmath.Div(vmath.Mul(v.Strength, v.Radius), v.Radius+d)
	ax, ay := vmath.ScaleVector(tx, ty, accel)

	if v.Pull != 0 {
		// Velocity projects negative on the inward radial when drifting
		// outward; only that component draws the correction
		if drift := vmath.DotProduct(p.VelX, p.VelY, rx, ry); drift < 0 {
			cx, cy := vmath.ScaleVector(rx, ry, vmath.Mul(v.Pull, -drift))
			ax += cx
			ay += cy
		}
	}

	p.VelX += vmath.Mul(ax, step)
	p.VelY += vmath.Mul(ay, step)
}
