package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// bspline is an interpolating B-spline of degree k with knots t and
// coefficients c, len(t) == len(c)+k+1.
type bspline struct {
	t []float64
	c []float64
	k int
}

// newSpline fits a degree-k B-spline through the sorted samples. Degree 0 is
// a previous-value hold. Knots follow the not-a-knot rule for odd degrees;
// degree 2 places interior knots at the sample midpoints, dropping the first
// and last one. Even degrees above 2 are not supported.
func newSpline(xs, ys []float64, k int) (kernel, error) {
	n := len(xs)
	switch {
	case k < 0:
		return nil, fmt.Errorf("spline order must be >= 0, got %d", k)
	case k > 2 && k%2 == 0:
		return nil, fmt.Errorf("even spline order %d is not supported", k)
	case n < k+1:
		return nil, fmt.Errorf("order %d needs at least %d samples, got %d", k, k+1, n)
	case !strictlyIncreasing(xs):
		return nil, errors.New("positions must be distinct")
	}

	if k == 0 {
		return previous{xs: xs, ys: ys}, nil
	}

	t := splineKnots(xs, k)
	c, err := solveCoefficients(t, xs, ys, k)
	if err != nil {
		return nil, err
	}
	return &bspline{t: t, c: c, k: k}, nil
}

func splineKnots(xs []float64, k int) []float64 {
	n := len(xs)
	t := make([]float64, 0, n+k+1)
	for i := 0; i <= k; i++ {
		t = append(t, xs[0])
	}

	if k == 2 {
		for i := 1; i < n-2; i++ {
			t = append(t, (xs[i]+xs[i+1])/2)
		}
	} else {
		m := (k - 1) / 2
		t = append(t, xs[m+1:n-m-1]...)
	}

	for i := 0; i <= k; i++ {
		t = append(t, xs[n-1])
	}
	return t
}

// solveCoefficients solves the collocation system B c = y, where row i holds
// the basis functions evaluated at xs[i].
//
// TODO: the system is banded with bandwidth k; factorize it with a banded LU
// instead of a dense one for long series.
func solveCoefficients(t, xs, ys []float64, k int) ([]float64, error) {
	n := len(xs)
	a := mat.NewDense(n, n, nil)
	basis := make([]float64, k+1)
	for i, x := range xs {
		l := findSpan(t, k, n, x)
		basisFuncs(t, k, l, x, basis)
		for r, v := range basis {
			a.Set(i, l-k+r, v)
		}
	}

	rhs := make([]float64, n)
	copy(rhs, ys)

	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("collocation system: %w", err)
		}
	}
	return mat.Col(nil, 0, &c), nil
}

// findSpan returns l in [k, n-1] with t[l] <= x < t[l+1]. The right end of the
// base interval maps to the last non-empty span.
func findSpan(t []float64, k, n int, x float64) int {
	l := sort.Search(len(t), func(i int) bool { return t[i] > x }) - 1
	if l < k {
		l = k
	}
	if l > n-1 {
		l = n - 1
	}
	return l
}

// basisFuncs fills out with the k+1 non-zero basis functions N[l-k..l] at x
// using the Cox-de Boor recurrence.
func basisFuncs(t []float64, k, l int, x float64, out []float64) {
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	out[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = x - t[l+1-j]
		right[j] = t[l+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}
}

func (s *bspline) at(x float64) float64 {
	n := len(s.c)
	l := findSpan(s.t, s.k, n, x)
	basis := make([]float64, s.k+1)
	basisFuncs(s.t, s.k, l, x, basis)

	var v float64
	for r, b := range basis {
		v += s.c[l-s.k+r] * b
	}
	return v
}
