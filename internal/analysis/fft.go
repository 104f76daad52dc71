package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var (
	ErrTooShort = errors.New("analysis: trace too short")
	ErrFlat     = errors.New("analysis: trace has no periodic component")
)

const minSamples = 4

// PowerSpectrum returns the magnitude of the first half of the DFT of data
// after removing its mean.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

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

// DominantPeriod returns the period, in samples, of the strongest non-DC
// frequency bin.
func DominantPeriod(data []float64) (float64, error) {
	if len(data) < minSamples {
		return 0, ErrTooShort
	}
	ps := PowerSpectrum(data)

	peak, idx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > peak {
			peak, idx = ps[i], i
		}
	}
	if idx == 0 || peak < 1e-9 {
		return 0, ErrFlat
	}
	return float64(len(data)) / float64(idx), nil
}
