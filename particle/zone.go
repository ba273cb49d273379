package particle

import (
	"github.com/lixenwraith/pyre/vmath"
)

// Zone samples spawn offsets from the emitter origin, Q32.32 cells
type Zone interface {
	Sample(rng *vmath.FastRand) (dx, dy int64)
}

// PointZone emits everything from the origin
type PointZone struct{}

func (PointZone) Sample(rng *vmath.FastRand) (dx, dy int64) {
	return 0, 0
}

// RectZone emits from a filled rectangle centered on the origin
type RectZone struct {
	Width, Height int64
}

func (z RectZone) Sample(rng *vmath.FastRand) (dx, dy int64) {
	dx = rng.Range(-z.Width/2, z.Width/2)
	dy = rng.Range(-z.Height/2, z.Height/2)
	return dx, dy
}

// RingZone emits from an annulus; RMin == RMax gives edge emission
type RingZone struct {
	RMin, RMax int64
}

func (z RingZone) Sample(rng *vmath.FastRand) (dx, dy int64) {
	r := z.RMin
	if z.RMax > z.RMin {
		r = rng.Range(z.RMin, z.RMax)
	}
	ux, uy := vmath.UnitFromAngle(rng.Angle())
	return vmath.Mul(ux, r), vmath.Mul(uy, r)
}

// LineZone emits along the segment from (X1, Y1) to (X2, Y2),
// both endpoints relative to the origin
type LineZone struct {
	X1, Y1 int64
	X2, Y2 int64
}

func (z LineZone) Sample(rng *vmath.FastRand) (dx, dy int64) {
	t := int64(rng.Next() & vmath.Mask) // uniform Q32.32 in [0, 1)
	dx = vmath.Lerp(z.X1, z.X2, t)
	dy = vmath.Lerp(z.Y1, z.Y2, t)
	return dx, dy
}
