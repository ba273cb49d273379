package event

// Packed payload helpers
// Small payloads are bit-packed into a uint64 to bypass payload struct allocation
// on hot paths. Coordinates are terminal cells and fit comfortably in 16 bits.

// PackBurst encodes a burst location and particle count
// Layout: X (bits 32-47) | Y (bits 16-31) | Count (bits 0-15)
func PackBurst(x, y, count int) uint64 {
	return uint64(uint16(int16(x)))<<32 | uint64(uint16(int16(y)))<<16 | uint64(uint16(count))
}

// UnpackBurst decodes a PackBurst payload
func UnpackBurst(packed uint64) (x, y, count int) {
	x = int(int16(uint16(packed >> 32)))
	y = int(int16(uint16(packed >> 16)))
	count = int(uint16(packed))
	return x, y, count
}

// PackSize encodes simulation bounds
// Layout: Width (bits 16-31) | Height (bits 0-15)
func PackSize(width, height int) uint64 {
	return uint64(uint16(width))<<16 | uint64(uint16(height))
}

// UnpackSize decodes a PackSize payload
func UnpackSize(packed uint64) (width, height int) {
	return int(uint16(packed >> 16)), int(uint16(packed))
}

// EmitBurst pushes a burst event with a packed payload
func EmitBurst(q *EventQueue, x, y, count int, frame int64) {
	q.Push(Event{
		Type:    EventBurst,
		Payload: PackBurst(x, y, count),
		Frame:   frame,
	})
}

// EmitExhausted pushes an emitter exhaustion event
// Emitter IDs occupy the low 32 bits
func EmitExhausted(q *EventQueue, id uint32, frame int64) {
	q.Push(Event{
		Type:    EventEmitterExhausted,
		Payload: uint64(id),
		Frame:   frame,
	})
}

// EmitResize pushes a bounds change event with a packed payload
func EmitResize(q *EventQueue, width, height int, frame int64) {
	q.Push(Event{
		Type:    EventFieldResize,
		Payload: PackSize(width, height),
		Frame:   frame,
	})
}
