package parameter

import "time"

// Loop & Timing
const (
	// FrameUpdateInterval is the simulation step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StatusUpdateInterval is how often HUD counters are refreshed from the registry
	StatusUpdateInterval = 250 * time.Millisecond
)

// Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// EventLoopIterations is the cycles the consumer drains per frame for immediate settling
	EventLoopIterations = 16
)

// Field Defaults
const (
	// DefaultFieldWidth is the fallback simulation width when no terminal size is known
	DefaultFieldWidth = 160

	// DefaultFieldHeight is the fallback simulation height when no terminal size is known
	DefaultFieldHeight = 48
)
