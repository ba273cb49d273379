package particle

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pyre/event"
	"github.com/lixenwraith/pyre/status"
	"github.com/lixenwraith/pyre/vmath"
)

// Manager owns emitters and processors and drives the per-frame pass
// Update runs on one goroutine (the frame loop); the lock protects
// registration from other goroutines (input handlers, resize)
type Manager struct {
	mu sync.RWMutex

	processors []Processor
	emitters   []*Emitter

	// Field bounds in cells; zero disables boundary reflection
	width, height int

	queue *event.EventQueue
	frame int64

	nextEmitterID uint32

	registry *status.Registry

	// Telemetry, pointers cached at construction
	statSpawned *atomic.Int64
	statActive  *atomic.Int64
	statExpired *atomic.Int64
	statProcs   *atomic.Int64
	statFrames  *atomic.Int64

	destroyed bool
}

// NewManager creates a manager for a field of the given cell size
func NewManager(width, height int) *Manager {
	m := &Manager{
		width:    width,
		height:   height,
		queue:    event.NewEventQueue(),
		registry: status.NewRegistry(),
	}
	m.statSpawned = m.registry.Ints.Get("particles.spawned")
	m.statActive = m.registry.Ints.Get("particles.active")
	m.statExpired = m.registry.Ints.Get("particles.expired")
	m.statProcs = m.registry.Ints.Get("processors.active")
	m.statFrames = m.registry.Ints.Get("manager.frames")
	return m
}

// Events returns the manager's event queue for frontend consumers
func (m *Manager) Events() *event.EventQueue {
	return m.queue
}

// Status returns the telemetry registry
func (m *Manager) Status() *status.Registry {
	return m.registry
}

// Frame returns the completed frame count
func (m *Manager) Frame() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frame
}

// Size returns the field bounds in cells
func (m *Manager) Size() (width, height int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.width, m.height
}

// SetSize updates the field bounds (terminal resize)
func (m *Manager) SetSize(width, height int) {
	m.mu.Lock()
	m.width = width
	m.height = height
	frame := m.frame
	m.mu.Unlock()
	event.EmitResize(m.queue, width, height, frame)
}

// AddProcessor adopts a processor and rebinds its back-reference
// Processors run in insertion order
func (m *Manager) AddProcessor(p Processor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := p.(interface{ bind(*Manager) }); ok {
		b.bind(m)
	}
	m.processors = append(m.processors, p)
}

// RemoveProcessor detaches a processor; detaching is teardown, so the
// processor's manager reference is cleared
func (m *Manager) RemoveProcessor(p Processor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, held := range m.processors {
		if held == p {
			last := len(m.processors) - 1
			m.processors[i] = m.processors[last]
			m.processors[last] = nil
			m.processors = m.processors[:last]
			p.Destroy()
			return
		}
	}
}

// Processors returns a snapshot of all owned processors
func (m *Manager) Processors() []Processor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Processor, len(m.processors))
	copy(out, m.processors)
	return out
}

// AddEmitter adopts an emitter and assigns its identifier
func (m *Manager) AddEmitter(e *Emitter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextEmitterID++
	e.id = m.nextEmitterID
	m.emitters = append(m.emitters, e)
}

// Emitters returns a snapshot of all owned emitters
func (m *Manager) Emitters() []*Emitter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Emitter, len(m.emitters))
	copy(out, m.emitters)
	return out
}

// Explode bursts count particles from e at a world position and pushes
// the burst event for audio/HUD consumers
func (m *Manager) Explode(e *Emitter, count int, x, y int64) int {
	m.mu.Lock()
	n := e.Explode(count, x, y)
	frame := m.frame
	m.mu.Unlock()

	if n > 0 {
		m.statSpawned.Add(int64(n))
		event.EmitBurst(m.queue, vmath.ToInt(x), vmath.ToInt(y), n, frame)
	}
	return n
}

// Update runs one frame: spawn due particles, apply active processors to
// every live particle, advance kinetics, expire. dt is wall time since
// the previous frame
func (m *Manager) Update(dt time.Duration) {
	m.mu.RLock()
	if m.destroyed {
		m.mu.RUnlock()
		return
	}
	emitters := make([]*Emitter, len(m.emitters))
	copy(emitters, m.emitters)
	// Inactive processors are filtered once per frame, before any
	// per-particle work
	procs := make([]Processor, 0, len(m.processors))
	for _, p := range m.processors {
		if p.IsActive() {
			procs = append(procs, p)
		}
	}
	width, height := m.width, m.height
	m.mu.RUnlock()

	delta := dt.Milliseconds()
	step := vmath.FromDuration(dt)

	var spawned, expired, active int64

	for _, e := range emitters {
		spawned += int64(e.SpawnDue(dt))
	}

	if len(procs) > 0 {
		for _, e := range emitters {
			e.ForEachAlive(func(p *Particle) {
				for _, proc := range procs {
					proc.Update(p, delta, step)
				}
			})
		}
	}

	for _, e := range emitters {
		expired += int64(e.Advance(delta, step, width, height))
		active += int64(e.Len())
	}

	m.mu.Lock()
	m.frame++
	frame := m.frame
	m.mu.Unlock()

	// Exhaustion is edge-triggered: notify once per emitter
	for _, e := range emitters {
		if e.exhausted && !e.notified {
			e.notified = true
			event.EmitExhausted(m.queue, e.id, frame)
		}
	}

	m.statSpawned.Add(spawned)
	m.statExpired.Add(expired)
	m.statActive.Store(active)
	m.statProcs.Store(int64(len(procs)))
	m.statFrames.Store(frame)
}

// Destroy tears down the manager: every owned processor's back-reference
// is released, emitters and processors are dropped. Idempotent
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return
	}
	m.destroyed = true

	for _, p := range m.processors {
		p.Destroy()
	}
	m.processors = nil
	m.emitters = nil

	m.queue.Push(event.Event{Type: event.EventManagerDestroy, Frame: m.frame})
}

// Destroyed reports whether Destroy has run
func (m *Manager) Destroyed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.destroyed
}
