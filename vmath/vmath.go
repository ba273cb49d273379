package vmath

import (
	"math"
	"math/bits"
	"time"
)

// Q32.32 fixed point constants
const (
	Shift   = 32
	Scale   = 1 << Shift
	Mask    = Scale - 1
	Half    = 1 << (Shift - 1)
	ScaleF  = float64(Scale)
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// --- Conversions ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// FromDuration converts a frame interval to Q32.32 seconds
// Intended for per-frame deltas; sub-nanosecond precision is not preserved
func FromDuration(d time.Duration) int64 {
	return FromFloat(d.Seconds())
}

// --- Arithmetic ---

// Mul computes a*b in Q32.32 with a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div computes a/b in Q32.32, saturating on overflow, zero on b == 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)

	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates from a to b by t, where t is Q32.32 in [0, Scale]
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}

// --- Approximations ---

// DistanceApprox uses alpha-max-plus-beta-min (error ~4%)
// Fine for spawn sampling and falloff; use Sqrt of MagnitudeSq when the
// error compounds (well force direction)
func DistanceApprox(dx, dy int64) int64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	// dist = max + 0.375*min
	return dx + (dy >> 2) + (dy >> 3)
}

// Sqrt returns Q32.32 square root using Newton-Raphson
// Converges in 12 iterations across the distances a particle field sees
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	// Initial guess from the highest set bit
	guess := x
	if guess > Scale {
		guess = Scale
		for guess < x>>1 {
			guess <<= 1
		}
	} else {
		guess = x >> 1
		if guess == 0 {
			guess = 1
		}
	}

	for i := 0; i < 12; i++ {
		if guess == 0 {
			return 0
		}
		guess = (guess + Div(x, guess)) >> 1
	}
	return guess
}
