package rate

import (
	"fmt"
	"math"
)

// Peaks holds strictly increasing, non-negative sample indices of detected
// events.
type Peaks []int

// Validate checks that the indices are non-negative and strictly increasing.
func (p Peaks) Validate() error {
	for i, v := range p {
		if v < 0 {
			return fmt.Errorf("%w: negative index %d at %d", ErrInvalidPeaks, v, i)
		}
		if i > 0 && v <= p[i-1] {
			return fmt.Errorf("%w: index %d at %d does not follow %d", ErrInvalidPeaks, v, i, p[i-1])
		}
	}
	return nil
}

// Last returns the last peak index, or -1 for an empty set.
func (p Peaks) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Float64 returns the indices as sample positions.
func (p Peaks) Float64() []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}
	return out
}

// FromMarkers returns the indices of a marker series with the same length as
// the signal it annotates. Any non-zero, non-NaN element marks a peak.
func FromMarkers(markers []float64) Peaks {
	var p Peaks
	for i, v := range markers {
		if v != 0 && !math.IsNaN(v) {
			p = append(p, i)
		}
	}
	return p
}
