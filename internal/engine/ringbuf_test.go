package engine

import (
	"math"
	"testing"
)

func TestRingBuffer_PushEvict(t *testing.T) {
	r := NewRingBuffer[int](3)

	for i := 1; i <= 3; i++ {
		if _, full := r.Push(i); full {
			t.Errorf("push %d evicted before capacity", i)
		}
	}
	evicted, full := r.Push(4)
	if !full || evicted != 1 {
		t.Errorf("push 4: evicted=%d full=%v, want 1 true", evicted, full)
	}

	want := []int{2, 3, 4}
	got := r.Values()
	if len(got) != len(want) {
		t.Fatalf("Values = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRingBuffer_LastAndLookback(t *testing.T) {
	r := NewRingBuffer[float64](4)
	for i := 1; i <= 6; i++ {
		r.Push(float64(i))
	}

	if got := r.Last(); got != 6 {
		t.Errorf("Last = %v", got)
	}
	if got := r.Lookback(2); got != 4 {
		t.Errorf("Lookback(2) = %v", got)
	}
	// Beyond retained history clamps to the oldest entry.
	if got := r.Lookback(100); got != 3 {
		t.Errorf("Lookback(100) = %v", got)
	}
}

func TestRingBuffer_Empty(t *testing.T) {
	r := NewRingBuffer[float64](4)
	if r.Last() != 0 || r.Lookback(1) != 0 || r.Len() != 0 {
		t.Error("empty buffer should return zero values")
	}
}

func TestPressureSampler_RunningSumMatchesWindow(t *testing.T) {
	// After capacity+5 pushes the incremental running sum must agree with
	// a fresh sum over the retained window.
	const capacity = 16
	sampleDt := 0.05
	s := NewPressureSampler(capacity, sampleDt)

	vals := make([]float64, capacity+5)
	for i := range vals {
		vals[i] = float64(i)*0.37 + 0.11
		s.Push(vals[i])
	}

	window := vals[len(vals)-capacity:]
	fresh := 0.0
	for _, v := range window {
		fresh += v
	}
	want := fresh / float64(capacity) / sampleDt

	if got := s.Average(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Average = %v, want %v", got, want)
	}
}

func TestPressureSampler_ColdStartRampsUp(t *testing.T) {
	s := NewPressureSampler(10, 1.0)
	s.Push(5.0)
	// One sample in a 10-slot window averages against the full capacity.
	if got := s.Average(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("cold average = %v, want 0.5", got)
	}
}
