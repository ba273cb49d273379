package particle

import (
	"testing"
)

// TestParticleAlive verifies the liveness predicate
func TestParticleAlive(t *testing.T) {
	p := Particle{Life: 1, Lifespan: 100}
	if !p.Alive() {
		t.Error("Expected particle with remaining life to be alive")
	}

	p.Life = 0
	if p.Alive() {
		t.Error("Expected particle with zero life to be dead")
	}
}

// TestParticleLifeFrac verifies the ramp input sweeps 0 to 1 over life
func TestParticleLifeFrac(t *testing.T) {
	p := Particle{Life: 100, Lifespan: 100}
	if got := p.LifeFrac(); got != 0 {
		t.Errorf("Expected 0 at spawn, got %f", got)
	}

	p.Life = 50
	if got := p.LifeFrac(); got != 0.5 {
		t.Errorf("Expected 0.5 at half life, got %f", got)
	}

	p.Life = 0
	if got := p.LifeFrac(); got != 1 {
		t.Errorf("Expected 1 at expiry, got %f", got)
	}

	// Overdrawn life clamps
	p.Life = -20
	if got := p.LifeFrac(); got != 1 {
		t.Errorf("Expected clamp at 1, got %f", got)
	}

	// Zero lifespan counts as expired
	p = Particle{Life: 0, Lifespan: 0}
	if got := p.LifeFrac(); got != 1 {
		t.Errorf("Expected 1 for zero lifespan, got %f", got)
	}
}
