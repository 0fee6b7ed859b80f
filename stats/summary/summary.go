// Package summary condenses a rate signal into a handful of descriptive
// values. NaN and infinite samples are counted but excluded from every
// statistic.
package summary

import "math"

// Summary holds descriptive statistics of a rate signal.
type Summary struct {
	Length int // all samples
	Finite int // samples used for the statistics
	Mean   float64
	Std    float64 // population standard deviation
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Range  float64 // Max - Min
}

func emptySummary(n int) Summary {
	return Summary{
		Length: n,
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Min:    math.NaN(),
		MinPos: -1,
		Max:    math.NaN(),
		MaxPos: -1,
		Range:  math.NaN(),
	}
}

// Calculate computes the summary of signal in a single pass using
// Welford's online algorithm.
func Calculate(signal []float64) Summary {
	var acc Accumulator
	acc.Update(signal)
	return acc.Result()
}

// Accumulator builds a Summary incrementally across blocks of samples.
// Results are identical to Calculate over the concatenated blocks.
type Accumulator struct {
	n      int
	finite int
	mean   float64
	m2     float64
	minVal float64
	minPos int
	maxVal float64
	maxPos int
}

// Update adds a block of samples.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		pos := a.n
		a.n++
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}

		a.finite++
		delta := x - a.mean
		a.mean += delta / float64(a.finite)
		a.m2 += delta * (x - a.mean)

		if a.finite == 1 {
			a.minVal, a.minPos = x, pos
			a.maxVal, a.maxPos = x, pos
			continue
		}
		if x > a.maxVal {
			a.maxVal, a.maxPos = x, pos
		}
		if x < a.minVal {
			a.minVal, a.minPos = x, pos
		}
	}
}

// Result returns the summary of everything seen so far. Without finite
// samples all statistics are NaN and the positions -1.
func (a *Accumulator) Result() Summary {
	if a.finite == 0 {
		return emptySummary(a.n)
	}
	return Summary{
		Length: a.n,
		Finite: a.finite,
		Mean:   a.mean,
		Std:    math.Sqrt(a.m2 / float64(a.finite)),
		Min:    a.minVal,
		MinPos: a.minPos,
		Max:    a.maxVal,
		MaxPos: a.maxPos,
		Range:  a.maxVal - a.minVal,
	}
}

// Reset clears the accumulator for reuse.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
