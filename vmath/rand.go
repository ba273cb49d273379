package vmath

// FastRand is a xorshift64 generator for spawn sampling
// Not safe for concurrent use; each emitter owns one
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a Q32.32 value uniformly sampled from [min, max]
// Returns min when the range is empty or inverted
func (r *FastRand) Range(min, max int64) int64 {
	if max <= min {
		return min
	}
	span := uint64(max-min) + 1
	if span == 0 {
		// max-min covers all of int64; any draw is in bounds
		return min + int64(r.Next())
	}
	return min + int64(r.Next()%span)
}

// Angle returns a random angle in [0, Scale), one full turn
func (r *FastRand) Angle() int64 {
	return int64(r.Next() & Mask)
}

// Chance returns true with probability p, where p is Q32.32 in [0, Scale]
func (r *FastRand) Chance(p int64) bool {
	if p <= 0 {
		return false
	}
	if p >= Scale {
		return true
	}
	return int64(r.Next()&Mask) < p
}
