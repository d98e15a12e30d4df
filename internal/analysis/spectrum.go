// Package analysis provides frequency-domain views of the recorded scalar
// histories, mainly to spot oscillation of the pressure-pinning loop.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the positive-frequency half of the
// Fourier transform of data, with the mean removed first so the DC bin does
// not dominate the plot.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := Mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest
// non-DC spectral component, or 0 when the signal is too short or flat.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	maxBin, maxVal := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxVal {
			maxBin, maxVal = i, ps[i]
		}
	}
	if maxBin == 0 || maxVal == 0 {
		return 0
	}
	return float64(len(data)) / float64(maxBin)
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// StdDev returns the population standard deviation.
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	sum := 0.0
	for _, v := range data {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(data)))
}
