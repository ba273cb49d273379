package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp maps a normalized life fraction to a color, blending between
// stops in Hcl space for perceptually even fades
// The zero value is a constant white ramp
type Ramp struct {
	stops []colorful.Color
}

// NewRamp builds a ramp from ordered color stops (age 0 first)
func NewRamp(stops ...RGB) Ramp {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i] = colorful.Color{
			R: float64(s.R) / 255.0,
			G: float64(s.G) / 255.0,
			B: float64(s.B) / 255.0,
		}
	}
	return Ramp{stops: cs}
}

// At evaluates the ramp at t in [0, 1]; t is clamped
func (r Ramp) At(t float64) RGB {
	switch len(r.stops) {
	case 0:
		return RGBWhite
	case 1:
		return rgb255(r.stops[0])
	}

	if t <= 0 {
		return rgb255(r.stops[0])
	}
	if t >= 1 {
		return rgb255(r.stops[len(r.stops)-1])
	}

	// Locate segment and blend within it
	span := t * float64(len(r.stops)-1)
	idx := int(span)
	if idx >= len(r.stops)-1 {
		idx = len(r.stops) - 2
	}
	frac := span - float64(idx)

	blended := r.stops[idx].BlendHcl(r.stops[idx+1], frac).Clamped()
	return rgb255(blended)
}

func rgb255(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}
