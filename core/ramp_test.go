package core

import "testing"

func TestRampZeroValueIsWhite(t *testing.T) {
	var r Ramp
	for _, tt := range []float64{0, 0.5, 1} {
		if got := r.At(tt); got != RGBWhite {
			t.Errorf("Expected white at %v, got %v", tt, got)
		}
	}
}

func TestRampSingleStopIsConstant(t *testing.T) {
	stop := RGB{R: 200, G: 100, B: 50}
	r := NewRamp(stop)
	if got := r.At(0.7); got != stop {
		t.Errorf("Expected %v, got %v", stop, got)
	}
}

func TestRampEndpoints(t *testing.T) {
	first := RGB{R: 255, G: 255, B: 0}
	last := RGB{R: 40, G: 0, B: 0}
	r := NewRamp(first, RGB{R: 255, G: 120, B: 0}, last)

	if got := r.At(0); got != first {
		t.Errorf("Expected first stop %v at t=0, got %v", first, got)
	}
	if got := r.At(1); got != last {
		t.Errorf("Expected last stop %v at t=1, got %v", last, got)
	}

	// Out-of-range inputs clamp
	if got := r.At(-0.5); got != first {
		t.Errorf("Expected clamp to first stop, got %v", got)
	}
	if got := r.At(2.0); got != last {
		t.Errorf("Expected clamp to last stop, got %v", got)
	}
}

func TestRampBlendsBetweenStops(t *testing.T) {
	a := RGB{R: 255, G: 0, B: 0}
	b := RGB{R: 0, G: 0, B: 255}
	r := NewRamp(a, b)

	mid := r.At(0.5)
	if mid == a || mid == b {
		t.Errorf("Expected blended color at midpoint, got endpoint %v", mid)
	}
}
