package rate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-peakrate/dsp/core"
	"github.com/cwbudde/algo-peakrate/dsp/interp"
)

// PeriodProvider turns peaks into periods in seconds. The result has one
// value per peak when desiredLength is zero, or desiredLength values
// otherwise.
type PeriodProvider interface {
	Periods(peaks Peaks, samplingRate float64, desiredLength int, method interp.Method) ([]float64, error)
}

// PeriodProviderFunc adapts a function to a PeriodProvider.
type PeriodProviderFunc func(peaks Peaks, samplingRate float64, desiredLength int, method interp.Method) ([]float64, error)

// Periods calls f.
func (f PeriodProviderFunc) Periods(peaks Peaks, samplingRate float64, desiredLength int, method interp.Method) ([]float64, error) {
	return f(peaks, samplingRate, desiredLength, method)
}

// MinPeaks is the smallest number of peaks PeakPeriods computes periods for.
// Smaller sets yield NaN periods.
const MinPeaks = 4

// PeakPeriods computes periods from the distance between consecutive peaks.
type PeakPeriods struct{}

var _ PeriodProvider = PeakPeriods{}

// Periods returns the interval preceding each peak in seconds. The first
// peak has no predecessor and gets the mean of the other intervals.
//
// With desiredLength > 0 the periods are interpolated onto the sample
// positions 0..desiredLength-1, which must extend past the last peak. A
// desiredLength equal to the number of peaks counts as unset. With fewer
// than MinPeaks peaks the result is all NaN.
func (PeakPeriods) Periods(peaks Peaks, samplingRate float64, desiredLength int, method interp.Method) ([]float64, error) {
	if err := peaks.Validate(); err != nil {
		return nil, err
	}
	if !(samplingRate > 0) || math.IsInf(samplingRate, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSamplingRate, samplingRate)
	}
	if desiredLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDesiredLength, desiredLength)
	}

	if len(peaks) < MinPeaks {
		n := len(peaks)
		if desiredLength > 0 {
			n = desiredLength
		}
		out := make([]float64, n)
		core.Fill(out, math.NaN())
		return out, nil
	}

	if desiredLength == len(peaks) {
		desiredLength = 0
	}
	if desiredLength > 0 && desiredLength <= peaks.Last() {
		return nil, fmt.Errorf("%w: %d does not extend past the last peak at %d", ErrDesiredLength, desiredLength, peaks.Last())
	}

	periods := make([]float64, len(peaks))
	for i := 1; i < len(peaks); i++ {
		periods[i] = float64(peaks[i] - peaks[i-1])
	}
	// algo-vecmath has no scalar scale, so the interval factor is a vector.
	scale := make([]float64, len(periods)-1)
	core.Fill(scale, 1/samplingRate)
	vecmath.MulBlockInPlace(periods[1:], scale)
	periods[0] = core.Mean(periods[1:])

	if desiredLength == 0 {
		return periods, nil
	}

	target := make([]float64, desiredLength)
	for i := range target {
		target[i] = float64(i)
	}
	return interp.Interpolate(peaks.Float64(), periods, interp.Positions(target), method)
}
