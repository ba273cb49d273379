package particle

// Processor is a pluggable per-frame hook that can modify particle motion
// The manager invokes Update once per frame, per live particle, on every
// active processor; concrete variants embed ProcessorBase and override Update
type Processor interface {
	// Update receives elapsed time both as milliseconds and as Q32.32
	// seconds; intended to mutate the particle's velocity fields
	Update(p *Particle, delta, step int64)

	// Destroy releases the back-reference to the owning manager
	Destroy()

	// IsActive reports whether the manager should invoke Update this frame
	IsActive() bool
}

// ProcessorBase provides the common state for all processors
// Embed in processor struct to eliminate boilerplate
type ProcessorBase struct {
	// Manager is a non-owning back-reference; the manager owns the processor
	Manager *Manager

	// X and Y are world-space coordinates in Q32.32 cells
	X, Y int64

	// Active gates the per-frame pass; skipping is enforced by the
	// manager, never by the processor itself
	Active bool
}

// NewProcessorBase initializes base state bound to m at the origin
// Call once in processor constructor
func NewProcessorBase(m *Manager) ProcessorBase {
	return ProcessorBase{
		Manager: m,
		Active:  true,
	}
}

// NewProcessorBaseAt initializes base state at a world position
func NewProcessorBaseAt(m *Manager, x, y int64) ProcessorBase {
	return ProcessorBase{
		Manager: m,
		X:       x,
		Y:       y,
		Active:  true,
	}
}

// Update is a no-op at the base level
func (b *ProcessorBase) Update(p *Particle, delta, step int64) {}

// Destroy clears the manager reference and nothing else
// Position and the active flag survive teardown; safe to call twice
func (b *ProcessorBase) Destroy() {
	b.Manager = nil
}

// IsActive reports the Active flag
func (b *ProcessorBase) IsActive() bool {
	return b.Active
}

// bind rebinds the back-reference when a processor is adopted by a manager
func (b *ProcessorBase) bind(m *Manager) {
	b.Manager = m
}
