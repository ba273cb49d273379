package vmath

import (
	"math"
)

// SinLUT and CosLUT hold one full turn sampled at LUTSize steps, Q32.32
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64
)

func init() {
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * ScaleF)
		CosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}
}

// Sin returns sine of an angle where 0..Scale maps to 0..2pi
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

// Cos returns cosine of an angle where 0..Scale maps to 0..2pi
func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}

// UnitFromAngle returns the unit vector for an angle (0..Scale = full turn)
// Used for emission direction sampling
func UnitFromAngle(angle int64) (x, y int64) {
	return Cos(angle), Sin(angle)
}
