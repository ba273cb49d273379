package particle

import (
	"testing"
	"time"

	"github.com/lixenwraith/pyre/vmath"
)

// recordingProcessor counts Update invocations for manager-pass verification
type recordingProcessor struct {
	ProcessorBase
	calls int
}

func (r *recordingProcessor) Update(p *Particle, delta, step int64) {
	r.calls++
}

// TestProcessorBaseDefaults verifies construction fills the documented defaults
func TestProcessorBaseDefaults(t *testing.T) {
	m := NewManager(80, 24)
	b := NewProcessorBase(m)

	if b.Manager != m {
		t.Error("Expected manager back-reference to be set")
	}
	if b.X != 0 || b.Y != 0 {
		t.Errorf("Expected origin position, got (%d, %d)", b.X, b.Y)
	}
	if !b.Active {
		t.Error("Expected new processor to be active")
	}
	if !b.IsActive() {
		t.Error("Expected IsActive to report true")
	}
}

// TestProcessorBaseExplicit verifies literal construction holds supplied values exactly
func TestProcessorBaseExplicit(t *testing.T) {
	m := NewManager(80, 24)
	b := ProcessorBase{
		Manager: m,
		X:       vmath.FromInt(5),
		Y:       vmath.FromInt(10),
		Active:  false,
	}

	if b.Manager != m {
		t.Error("Expected manager back-reference to be set")
	}
	if vmath.ToInt(b.X) != 5 || vmath.ToInt(b.Y) != 10 {
		t.Errorf("Expected position (5, 10), got (%d, %d)", vmath.ToInt(b.X), vmath.ToInt(b.Y))
	}
	if b.Active {
		t.Error("Expected explicit inactive flag to be preserved")
	}
	if b.IsActive() {
		t.Error("Expected IsActive to report false")
	}
}

// TestProcessorBaseAt verifies placed construction keeps the active default
func TestProcessorBaseAt(t *testing.T) {
	m := NewManager(80, 24)
	b := NewProcessorBaseAt(m, vmath.FromInt(3), vmath.FromInt(7))

	if vmath.ToInt(b.X) != 3 || vmath.ToInt(b.Y) != 7 {
		t.Errorf("Expected position (3, 7), got (%d, %d)", vmath.ToInt(b.X), vmath.ToInt(b.Y))
	}
	if !b.Active {
		t.Error("Expected placed processor to default active")
	}
}

// TestProcessorBaseUpdateNoop verifies the base hook changes nothing
func TestProcessorBaseUpdateNoop(t *testing.T) {
	m := NewManager(80, 24)
	b := NewProcessorBaseAt(m, vmath.FromInt(3), vmath.FromInt(4))

	p := Particle{Life: 100, Lifespan: 100, Rune: '*'}
	p.VelX = vmath.FromInt(7)
	p.VelY = vmath.FromInt(-2)
	before := p

	b.Update(&p, 16, vmath.FromFloat(0.016))

	if p != before {
		t.Error("Expected base Update to leave the particle untouched")
	}
	if b.Manager != m || b.X != vmath.FromInt(3) || b.Y != vmath.FromInt(4) || !b.Active {
		t.Error("Expected base Update to leave processor fields untouched")
	}
}

// TestProcessorBaseDestroy verifies teardown clears only the manager reference
func TestProcessorBaseDestroy(t *testing.T) {
	m := NewManager(80, 24)
	b := ProcessorBase{Manager: m, X: vmath.FromInt(5), Y: vmath.FromInt(10), Active: false}

	b.Destroy()

	if b.Manager != nil {
		t.Error("Expected manager reference nil after Destroy")
	}
	if vmath.ToInt(b.X) != 5 || vmath.ToInt(b.Y) != 10 {
		t.Error("Expected position to survive Destroy")
	}
	if b.Active {
		t.Error("Expected active flag to survive Destroy unchanged")
	}

	// Second destroy is harmless
	b.Destroy()
	if b.Manager != nil {
		t.Error("Expected manager to stay nil after second Destroy")
	}
}

// TestInactiveProcessorSkipped verifies the manager pass never invokes
// Update on an inactive processor
func TestInactiveProcessorSkipped(t *testing.T) {
	m := NewManager(80, 24)

	e := NewEmitter(EmitterConfig{
		Frequency: -1,
		Seed:      42,
	})
	m.AddEmitter(e)
	m.Explode(e, 4, vmath.FromInt(40), vmath.FromInt(12))

	activeRec := &recordingProcessor{ProcessorBase: NewProcessorBase(m)}
	inactiveRec := &recordingProcessor{ProcessorBase: NewProcessorBase(m)}
	inactiveRec.Active = false
	m.AddProcessor(activeRec)
	m.AddProcessor(inactiveRec)

	m.Update(16 * time.Millisecond)

	if activeRec.calls != 4 {
		t.Errorf("Expected active processor to see 4 particles, got %d", activeRec.calls)
	}
	if inactiveRec.calls != 0 {
		t.Errorf("Expected inactive processor to be skipped, got %d calls", inactiveRec.calls)
	}

	// Reactivation is observed on the next frame
	inactiveRec.Active = true
	m.Update(16 * time.Millisecond)
	if inactiveRec.calls == 0 {
		t.Error("Expected reactivated processor to run")
	}
}

// TestAddProcessorRebinds verifies adoption points the back-reference at the adopter
func TestAddProcessorRebinds(t *testing.T) {
	m1 := NewManager(80, 24)
	m2 := NewManager(80, 24)

	w := NewGravityWell(m1, 0, 0, vmath.FromInt(5))
	m2.AddProcessor(w)

	if w.Manager != m2 {
		t.Error("Expected AddProcessor to rebind the manager reference")
	}
}

// TestRemoveProcessorDetaches verifies removal is teardown for the processor
func TestRemoveProcessorDetaches(t *testing.T) {
	m := NewManager(80, 24)
	w := NewGravityWell(m, 0, 0, vmath.FromInt(5))
	d := NewDrift(m, 0, vmath.FromInt(3))
	m.AddProcessor(w)
	m.AddProcessor(d)

	m.RemoveProcessor(w)

	if w.Manager != nil {
		t.Error("Expected removed processor to be detached")
	}
	procs := m.Processors()
	if len(procs) != 1 {
		t.Fatalf("Expected 1 remaining processor, got %d", len(procs))
	}
	if procs[0] != Processor(d) {
		t.Error("Expected drift to remain owned")
	}

	// Removing an unknown processor is a no-op
	m.RemoveProcessor(w)
	if len(m.Processors()) != 1 {
		t.Error("Expected unknown removal to change nothing")
	}
}
