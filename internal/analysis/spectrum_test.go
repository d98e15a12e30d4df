package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(n, cycles int, amp, offset float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = offset + amp*math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(n))
	}
	return data
}

func TestPowerSpectrumPicksSineBin(t *testing.T) {
	// 8 full cycles over 128 samples concentrate in bin 8.
	ps := PowerSpectrum(sine(128, 8, 1.0, 0))
	require.Len(t, ps, 64)

	maxBin := 0
	for i := range ps {
		if ps[i] > ps[maxBin] {
			maxBin = i
		}
	}
	assert.Equal(t, 8, maxBin)
}

func TestPowerSpectrumRemovesMean(t *testing.T) {
	// A large constant offset must not leak into the DC bin.
	ps := PowerSpectrum(sine(128, 8, 1.0, 100.0))
	require.NotEmpty(t, ps)
	assert.InDelta(t, 0, ps[0], 1e-6)
}

func TestPowerSpectrumShortInput(t *testing.T) {
	assert.Nil(t, PowerSpectrum(nil))
	assert.Nil(t, PowerSpectrum([]float64{1.0}))
}

func TestDominantPeriod(t *testing.T) {
	// 8 cycles over 128 samples is a period of 16 samples.
	got := DominantPeriod(sine(128, 8, 1.0, 0))
	assert.InDelta(t, 16.0, got, 1e-9)
}

func TestDominantPeriodFlatSignal(t *testing.T) {
	flat := make([]float64, 64)
	for i := range flat {
		flat[i] = 3.5
	}
	assert.Equal(t, 0.0, DominantPeriod(flat))
	assert.Equal(t, 0.0, DominantPeriod([]float64{1}))
}

func TestMeanAndStdDev(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.Equal(t, 5.0, Mean(data))
	assert.Equal(t, 2.0, StdDev(data))

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, StdDev(nil))
}
