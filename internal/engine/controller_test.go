package engine

import (
	"math"
	"testing"
)

func TestPressureController_UnpinnedPassesRateThrough(t *testing.T) {
	var c PressureController
	if got := c.Apply(1.0, 1.0, 10.0, 0.05); got != 0.05 {
		t.Errorf("unpinned rate = %v, want 0.05", got)
	}
}

func TestPressureController_PinnedFeedback(t *testing.T) {
	var c PressureController
	c.SetPin(PressurePin{IsPinned: true, AtValue: 0.02})

	current := 0.025
	lookback := 0.024
	boxSize := 10.0

	// slope - delta = (current - lookback) - (at - current)
	want := (current - lookback) - (c.Pin().AtValue - current)
	if got := c.Apply(current, lookback, boxSize, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("pinned rate = %v, want %v", got, want)
	}
}

func TestPressureController_ClampsToBoxFraction(t *testing.T) {
	var c PressureController
	c.SetPin(PressurePin{IsPinned: true, AtValue: 100.0})
	boxSize := 10.0

	// Huge pressure error: rate must clamp to ±1% of box size.
	got := c.Apply(0.0, 0.0, boxSize, 0)
	if math.Abs(got) != RateClampFraction*boxSize {
		t.Errorf("clamped rate = %v, want ±%v", got, RateClampFraction*boxSize)
	}

	c.SetPin(PressurePin{IsPinned: true, AtValue: -100.0})
	got = c.Apply(0.0, 0.0, boxSize, 0)
	if got != RateClampFraction*boxSize {
		t.Errorf("clamped rate = %v, want %v", got, RateClampFraction*boxSize)
	}
}

func TestPressureController_UnpinResetsRateOnce(t *testing.T) {
	var c PressureController
	c.SetPin(PressurePin{IsPinned: true, AtValue: 0.02})
	c.Apply(0.02, 0.02, 10.0, 0)

	// Release the pin: the first Apply must force the rate to zero...
	c.SetPin(PressurePin{IsPinned: false})
	if got := c.Apply(0.02, 0.02, 10.0, 0.07); got != 0 {
		t.Errorf("rate after unpin = %v, want 0", got)
	}
	// ...and subsequent calls leave the host-supplied rate alone.
	if got := c.Apply(0.02, 0.02, 10.0, 0.07); got != 0.07 {
		t.Errorf("rate after reset = %v, want 0.07", got)
	}
}

func TestPressureController_SignConvention(t *testing.T) {
	var c PressureController
	c.SetPin(PressurePin{IsPinned: true, AtValue: 0.05})

	// Pressure below setpoint, flat slope: delta > 0 so the rate is
	// negative and the box shrinks to raise pressure.
	if got := c.Apply(0.01, 0.01, 100.0, 0); got >= 0 {
		t.Errorf("below setpoint should shrink the box, rate = %v", got)
	}

	// Pressure above setpoint: the box grows.
	if got := c.Apply(0.09, 0.09, 100.0, 0); got <= 0 {
		t.Errorf("above setpoint should grow the box, rate = %v", got)
	}
}
