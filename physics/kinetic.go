package physics

import (
	"github.com/lixenwraith/pyre/core"
	"github.com/lixenwraith/pyre/vmath"
)

// Integrate performs the plain Euler step: v = v + a*dt; p = p + v*dt
// dt is Q32.32 seconds. Returns the resulting grid position
func Integrate(k *core.Kinetic, dt int64) (x, y int) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy int64) {
	k.VelX += vx
	k.VelY += vy
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, vx, vy int64) {
	k.VelX = vx
	k.VelY = vy
}

// ReflectBoundsX handles horizontal boundary collision with half damping,
// returns true if reflection occurred. Valid cell range is [minX, maxX)
func ReflectBoundsX(k *core.Kinetic, minX, maxX int) bool {
	x := vmath.ToInt(k.PreciseX)
	if x < minX {
		k.PreciseX = vmath.FromInt(minX)
		k.VelX = -k.VelX / 2
		return true
	}
	if x >= maxX {
		k.PreciseX = vmath.FromInt(maxX - 1)
		k.VelX = -k.VelX / 2
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision with half damping,
// returns true if reflection occurred. Valid cell range is [minY, maxY)
func ReflectBoundsY(k *core.Kinetic, minY, maxY int) bool {
	y := vmath.ToInt(k.PreciseY)
	if y < minY {
		k.PreciseY = vmath.FromInt(minY)
		k.VelY = -k.VelY / 2
		return true
	}
	if y >= maxY {
		k.PreciseY = vmath.FromInt(maxY - 1)
		k.VelY = -k.VelY / 2
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(k *core.Kinetic, width, height int) bool {
	rx := ReflectBoundsX(k, 0, width)
	ry := ReflectBoundsY(k, 0, height)
	return rx || ry
}

// GridPos returns current integer grid position
func GridPos(k *core.Kinetic) (x, y int) {
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}
