package event

// EventType represents the type of field event
type EventType int

const (
	// === Lifecycle Event ===

	// EventManagerDestroy signals manager teardown
	// Trigger: Manager.Destroy
	// Consumer: Frontends (stop loops, release terminal/speaker) | Payload: nil
	EventManagerDestroy EventType = iota

	// EventFieldResize signals simulation bounds change
	// Trigger: Frontend on terminal/canvas resize
	// Consumer: Manager (bounds update) | Payload: packed uint64 (PackSize)
	EventFieldResize

	// === Particle Event ===

	// EventBurst signals an immediate point burst was spawned
	// Trigger: Manager.Explode, frontend input
	// Consumer: SoundManager, HUD flash | Payload: packed uint64 (PackBurst)
	EventBurst

	// EventEmitterExhausted signals a finite emitter ran out of budget
	// Trigger: Emitter on last spawn of a bounded run
	// Consumer: SoundManager, HUD | Payload: packed uint64 (emitter ID, low 32 bits)
	EventEmitterExhausted
)

// Event represents a single field event with metadata
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
