package particle

import (
	"testing"

	"github.com/lixenwraith/pyre/vmath"
)

// TestDriftConstantField verifies zero-jitter drift applies the exact
// configured acceleration
func TestDriftConstantField(t *testing.T) {
	m := NewManager(160, 48)
	d := NewDrift(m, vmath.FromInt(2), vmath.FromInt(-4))
	d.Jitter = 0

	p := Particle{}
	d.Update(&p, 500, vmath.FromFloat(0.5))

	if p.VelX != vmath.FromInt(1) {
		t.Errorf("Expected VelX 1.0 after 0.5s at 2 cells/s², got %f", vmath.ToFloat(p.VelX))
	}
	if p.VelY != vmath.FromInt(-2) {
		t.Errorf("Expected VelY -2.0 after 0.5s at -4 cells/s², got %f", vmath.ToFloat(p.VelY))
	}
}

// TestDriftJitterBounded verifies jitter stays within its per-frame magnitude
func TestDriftJitterBounded(t *testing.T) {
	m := NewManager(160, 48)
	d := NewDrift(m, 0, 0)
	d.Jitter = vmath.FromInt(4)

	step := vmath.FromFloat(0.25)
	bound := vmath.Mul(d.Jitter, step) // 1 cell/s per frame

	for i := 0; i < 100; i++ {
		p := Particle{}
		d.Update(&p, 250, step)
		if vmath.Abs(p.VelX) > bound || vmath.Abs(p.VelY) > bound {
			t.Fatalf("Expected jitter within ±%d, got (%d, %d)", bound, p.VelX, p.VelY)
		}
	}
}

// TestDriftAccumulates verifies repeated updates integrate the field
func TestDriftAccumulates(t *testing.T) {
	m := NewManager(160, 48)
	d := NewDrift(m, vmath.FromInt(10), 0)
	d.Jitter = 0

	p := Particle{}
	for i := 0; i < 10; i++ {
		d.Update(&p, 100, vmath.FromFloat(0.1))
	}

	// 10 frames of 0.1s at 10 cells/s² = 10 cells/s
	got := vmath.ToFloat(p.VelX)
	if got < 9.9 || got > 10.1 {
		t.Errorf("Expected accumulated VelX near 10, got %f", got)
	}
}
