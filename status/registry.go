package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot captures current metric values into plain maps
// Used by HUD overlays and the status endpoint; not a consistent point-in-time view
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Bools:  make(map[string]bool, r.Bools.Count()),
		Ints:   make(map[string]int64, r.Ints.Count()),
		Floats: make(map[string]float64, r.Floats.Count()),
	}
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		s.Bools[key] = ptr.Load()
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		s.Ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		s.Floats[key] = ptr.Get()
	})
	return s
}

// Snapshot holds copied metric values keyed by metric name
type Snapshot struct {
	Bools  map[string]bool    `json:"bools,omitempty"`
	Ints   map[string]int64   `json:"ints,omitempty"`
	Floats map[string]float64 `json:"floats,omitempty"`
}
