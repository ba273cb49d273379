package visual

import (
	"github.com/lixenwraith/pyre/core"
)

// core.RGB color definitions for demo frontends
var (
	RgbBlack  = core.RGB{R: 0, G: 0, B: 0}
	RgbWhite  = core.RGB{R: 255, G: 255, B: 255}
	RgbRed    = core.RGB{R: 255, G: 0, B: 0}
	RgbOrange = core.RGB{R: 255, G: 120, B: 0}
	RgbYellow = core.RGB{R: 255, G: 215, B: 0}
	RgbGreen  = core.RGB{R: 34, G: 200, B: 34}
	RgbCyan   = core.RGB{R: 0, G: 206, B: 209}
	RgbBlue   = core.RGB{R: 65, G: 105, B: 225}
	RgbPurple = core.RGB{R: 180, G: 80, B: 220}
	RgbGray   = core.RGB{R: 128, G: 128, B: 128}
)

// Ramp keyframe colors (life-position endpoints)
var (
	RampFireHot  = core.RGB{R: 255, G: 250, B: 220}
	RampFireMid  = core.RGB{R: 255, G: 140, B: 20}
	RampFireCool = core.RGB{R: 120, G: 20, B: 10}

	RampPlasmaHot  = core.RGB{R: 220, G: 240, B: 255}
	RampPlasmaMid  = core.RGB{R: 90, G: 160, B: 255}
	RampPlasmaCool = core.RGB{R: 50, G: 30, B: 120}

	RampMonoHot  = core.RGB{R: 250, G: 250, B: 250}
	RampMonoCool = core.RGB{R: 60, G: 60, B: 60}
)

// Prebuilt ramps evaluated over particle life (0 = spawn, 1 = expiry)
var (
	FireRamp   = core.NewRamp(RampFireHot, RampFireMid, RampFireCool)
	PlasmaRamp = core.NewRamp(RampPlasmaHot, RampPlasmaMid, RampPlasmaCool)
	MonoRamp   = core.NewRamp(RampMonoHot, RampMonoCool)
)
