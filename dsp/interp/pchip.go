package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-peakrate/dsp/core"
)

// pchip is a piecewise cubic Hermite interpolant with Fritsch-Carlson
// derivatives. Queries outside the samples evaluate the first or last cubic.
type pchip struct {
	xs, ys, d []float64
}

func newPCHIP(positions, values []float64) (*pchip, error) {
	n := len(positions)
	if n < 2 {
		return nil, constructionError(MonotoneCubic, fmt.Sprintf("need at least 2 samples, got %d", n))
	}
	if !strictlyIncreasing(positions) {
		return nil, constructionError(MonotoneCubic, "positions must be strictly increasing")
	}

	xs := core.Clone(positions)
	ys := core.Clone(values)

	return &pchip{xs: xs, ys: ys, d: pchipDerivatives(xs, ys)}, nil
}

func pchipDerivatives(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	m := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		m[i] = (ys[i+1] - ys[i]) / h[i]
	}

	d := make([]float64, n)
	if n == 2 {
		d[0], d[1] = m[0], m[0]
		return d
	}

	// Interior points: weighted harmonic mean of the adjacent slopes, zero at
	// local extrema and flat segments.
	for i := 1; i < n-1; i++ {
		m0, m1 := m[i-1], m[i]
		if m0 == 0 || m1 == 0 || sign(m0) != sign(m1) {
			continue
		}
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		d[i] = (w1 + w2) / (w1/m0 + w2/m1)
	}

	d[0] = pchipEdge(h[0], h[1], m[0], m[1])
	d[n-1] = pchipEdge(h[n-2], h[n-3], m[n-2], m[n-3])
	return d
}

// pchipEdge is the one-sided three-point derivative estimate, limited so the
// end segment stays monotone.
func pchipEdge(h0, h1, m0, m1 float64) float64 {
	d := ((2*h0+h1)*m0 - h0*m1) / (h0 + h1)
	switch {
	case sign(d) != sign(m0):
		return 0
	case sign(m0) != sign(m1) && math.Abs(d) > 3*math.Abs(m0):
		return 3 * m0
	}
	return d
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (p *pchip) at(x float64) float64 {
	n := len(p.xs)
	i := sort.Search(n, func(i int) bool { return p.xs[i] > x }) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	h := p.xs[i+1] - p.xs[i]
	s := (x - p.xs[i]) / h
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*p.ys[i] + h10*h*p.d[i] + h01*p.ys[i+1] + h11*h*p.d[i+1]
}
