package interp

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	ginterp "gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-peakrate/dsp/core"
)

type kernel interface {
	at(x float64) float64
}

// Interpolator evaluates an interpolant built from (position, value) samples.
// It holds no mutable state and is safe for concurrent use.
type Interpolator struct {
	method Method
	k      kernel

	// Flat extrapolation bounds. Unused for MonotoneCubic.
	lo, hi       float64
	below, above float64
	clamp        bool
}

// New builds an interpolant for method over the given samples. Positions do
// not have to be sorted, except for [MonotoneCubic] which requires strictly
// increasing positions. The input slices are not retained.
func New(positions, values []float64, method Method) (*Interpolator, error) {
	if len(positions) != len(values) {
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrLengthMismatch, len(positions), len(values))
	}

	if method.kind == KindMonotoneCubic {
		p, err := newPCHIP(positions, values)
		if err != nil {
			return nil, err
		}
		return &Interpolator{method: method, k: p}, nil
	}

	if len(positions) == 0 {
		return nil, constructionError(method, "no samples")
	}

	xs, ys := sortedPairs(positions, values)

	var (
		k   kernel
		err error
	)
	switch method.kind {
	case KindNearest:
		k = newNearest(xs, ys)
	case KindPrevious:
		k = previous{xs: xs, ys: ys}
	case KindNext:
		k = next{xs: xs, ys: ys}
	case KindLinear:
		k, err = newLinear(xs, ys)
	case KindSpline:
		k, err = newSpline(xs, ys, method.order)
	default:
		return nil, constructionError(method, "unsupported method")
	}
	if err != nil {
		return nil, constructionError(method, err.Error())
	}

	return &Interpolator{
		method: method,
		k:      k,
		lo:     xs[0],
		hi:     xs[len(xs)-1],
		below:  values[0],
		above:  values[len(values)-1],
		clamp:  true,
	}, nil
}

// Method returns the method the interpolator was built with.
func (ip *Interpolator) Method() Method { return ip.method }

// At evaluates the interpolant at x.
func (ip *Interpolator) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if ip.clamp {
		if x < ip.lo {
			return ip.below
		}
		if x > ip.hi {
			return ip.above
		}
	}
	return ip.k.at(x)
}

// EvalAll evaluates the interpolant at every position in xs.
func (ip *Interpolator) EvalAll(xs []float64) []float64 {
	return ip.EvalInto(nil, xs)
}

// EvalInto evaluates the interpolant at every position in xs, writing into
// dst when its capacity suffices. It returns the filled slice.
func (ip *Interpolator) EvalInto(dst, xs []float64) []float64 {
	out := core.EnsureLen(dst, len(xs))
	for i, x := range xs {
		out[i] = ip.At(x)
	}
	return out
}

// Interpolate maps values sampled at positions onto the target grid.
//
// If the target has exactly len(positions) points, values is returned as is,
// without interpolation, even when the target positions differ from the
// sample positions.
func Interpolate(positions, values []float64, target Grid, method Method) ([]float64, error) {
	if len(positions) != len(values) {
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrLengthMismatch, len(positions), len(values))
	}
	if err := target.validate(); err != nil {
		return nil, err
	}
	if target.Len() == len(positions) {
		return values, nil
	}

	ip, err := New(positions, values, method)
	if err != nil {
		return nil, err
	}

	return ip.EvalAll(target.resolve(positions[0], positions[len(positions)-1])), nil
}

func constructionError(m Method, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInterpolationConstruction, m, reason)
}

// sortedPairs returns copies of positions and values ordered by position.
// Equal positions keep their input order.
func sortedPairs(positions, values []float64) ([]float64, []float64) {
	idx := make([]int, len(positions))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(positions[a], positions[b])
	})

	xs := make([]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		xs[i] = positions[j]
		ys[i] = values[j]
	}
	return xs, ys
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return false
		}
	}
	return true
}

type linear struct {
	pl ginterp.PiecewiseLinear
}

func newLinear(xs, ys []float64) (kernel, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", len(xs))
	}
	if !strictlyIncreasing(xs) {
		return nil, fmt.Errorf("positions must be distinct")
	}
	l := &linear{}
	if err := l.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *linear) at(x float64) float64 { return l.pl.Predict(x) }
