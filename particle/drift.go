package particle

import (
	"time"

	"github.com/lixenwraith/pyre/parameter"
	"github.com/lixenwraith/pyre/vmath"
)

// Drift applies a uniform field: constant acceleration plus random velocity
// jitter. A zone-less processor; its position is unused
type Drift struct {
	ProcessorBase

	// AccelX and AccelY are constant field acceleration, cells/sec^2
	AccelX, AccelY int64

	// Jitter is random velocity magnitude added per second, cells/sec
	// Set to zero for deterministic drift
	Jitter int64

	rng *vmath.FastRand
}

// NewDrift creates a uniform field with default jitter
func NewDrift(m *Manager, ax, ay int64) *Drift {
	return &Drift{
		ProcessorBase: NewProcessorBase(m),
		AccelX:        ax,
		AccelY:        ay,
		Jitter:        parameter.DriftJitterDefault,
		rng:           vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

// Update applies field acceleration and jitter scaled by the frame step
func (d *Drift) Update(p *Particle, delta, step int64) {
	p.VelX += vmath.Mul(d.AccelX, step)
	p.VelY += vmath.Mul(d.AccelY, step)

	if d.Jitter > 0 && d.rng != nil {
		j := vmath.Mul(d.Jitter, step)
		p.VelX += d.rng.Range(-j, j)
		p.VelY += d.rng.Range(-j, j)
	}
}
