package testutil

import "math"

// Polynomial evaluates sum(coeffs[i] * x^i) at every x.
func Polynomial(coeffs, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v := 0.0
		for j := len(coeffs) - 1; j >= 0; j-- {
			v = v*x + coeffs[j]
		}
		out[i] = v
	}
	return out
}

// Positions returns n positions starting at start with a fixed step.
func Positions(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Irregular returns n strictly increasing positions with steps cycling
// through 1, 1.5 and 0.5 times step.
func Irregular(start, step float64, n int) []float64 {
	factors := [...]float64{1, 1.5, 0.5}
	out := make([]float64, n)
	x := start
	for i := range out {
		out[i] = x
		x += step * factors[i%len(factors)]
	}
	return out
}

// Sine samples amplitude*sin(2*pi*freq*x) at every x.
func Sine(freq, amplitude float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*x)
	}
	return out
}
