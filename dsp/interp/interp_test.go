package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-peakrate/internal/testutil"
)

var allMethods = []Method{
	Nearest, Linear, Previous, Next, Zero, SLinear, Quadratic, Cubic, SplineOrder(5), MonotoneCubic,
}

var clampingMethods = []Method{
	Nearest, Linear, Previous, Next, Zero, SLinear, Quadratic, Cubic, SplineOrder(5),
}

func TestInterpolateSameCountReturnsInput(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{5, 7, 2, 9}

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Interpolate(xs, ys, Positions([]float64{10, 20, 30, 40}), m)
			if err != nil {
				t.Fatalf("Interpolate() error = %v", err)
			}
			if &got[0] != &ys[0] {
				t.Fatal("expected the input values slice to be returned")
			}

			got, err = Interpolate(xs, ys, Count(len(xs)), m)
			if err != nil {
				t.Fatalf("Interpolate() error = %v", err)
			}
			if &got[0] != &ys[0] {
				t.Fatal("expected the input values slice to be returned for Count")
			}
		})
	}
}

func TestInterpolateLengthMismatch(t *testing.T) {
	for _, m := range append(allMethods, Method{}) {
		t.Run(m.String(), func(t *testing.T) {
			// A target with the same count as positions must not bypass the check.
			_, err := Interpolate([]float64{0, 1, 2}, []float64{1, 2}, Count(3), m)
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("err = %v, want ErrLengthMismatch", err)
			}
			_, err = New([]float64{0}, nil, m)
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("New() err = %v, want ErrLengthMismatch", err)
			}
		})
	}
}

func TestInterpolateFlatExtrapolation(t *testing.T) {
	xs := testutil.Irregular(1, 1, 8)
	ys := testutil.Sine(0.1, 3, xs)
	first, last := xs[0], xs[len(xs)-1]
	target := []float64{first - 100, first - 1e-9, last + 1e-9, last + 100}

	for _, m := range clampingMethods {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Interpolate(xs, ys, Positions(target), m)
			if err != nil {
				t.Fatalf("Interpolate() error = %v", err)
			}
			want := []float64{ys[0], ys[0], ys[len(ys)-1], ys[len(ys)-1]}
			testutil.RequireSliceNearlyEqual(t, got, want, 0)
		})
	}
}

func TestInterpolateMonotoneCubicExtrapolatesPolynomialTail(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 2, 4, 6}

	got, err := Interpolate(xs, ys, Positions([]float64{-1, 4, 5}), MonotoneCubic)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{-2, 8, 10}, 1e-12)
}

func TestInterpolateExactAtKnots(t *testing.T) {
	xs := testutil.Irregular(0, 0.7, 9)
	ys := testutil.Sine(0.2, 1.5, xs)

	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			ip, err := New(xs, ys, m)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, ip.EvalAll(xs), ys, 1e-10)
		})
	}
}

func TestInterpolateCountGrid(t *testing.T) {
	xs := []float64{0, 2, 4}
	ys := []float64{0, 4, 8}

	got, err := Interpolate(xs, ys, Count(5), Linear)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 2, 4, 6, 8}, 1e-12)

	got, err = Interpolate(xs, ys, Count(1), Linear)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0}, 0)

	got, err = Interpolate(xs, ys, Count(0), Linear)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestInterpolateNegativeCount(t *testing.T) {
	_, err := Interpolate([]float64{0, 1}, []float64{0, 1}, Count(-2), Linear)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("err = %v, want ErrInvalidGrid", err)
	}
}

func TestInterpolateKernels(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{10, 20, 40}
	target := []float64{0.25, 0.5, 0.75, 1, 2, 2.5}

	tests := []struct {
		method Method
		want   []float64
	}{
		{method: Nearest, want: []float64{10, 10, 20, 20, 20, 40}},
		{method: Previous, want: []float64{10, 10, 10, 20, 20, 20}},
		{method: Zero, want: []float64{10, 10, 10, 20, 20, 20}},
		{method: Next, want: []float64{20, 20, 20, 20, 40, 40}},
		{method: Linear, want: []float64{12.5, 15, 17.5, 20, 30, 35}},
		{method: SLinear, want: []float64{12.5, 15, 17.5, 20, 30, 35}},
	}

	for _, tc := range tests {
		t.Run(tc.method.String(), func(t *testing.T) {
			got, err := Interpolate(xs, ys, Positions(target), tc.method)
			if err != nil {
				t.Fatalf("Interpolate() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
		})
	}
}

func TestSplinesReproducePolynomials(t *testing.T) {
	xs := testutil.Irregular(-2, 0.8, 10)
	target := testutil.Positions(-1.9, 0.37, 20)

	tests := []struct {
		method Method
		coeffs []float64
	}{
		{method: Quadratic, coeffs: []float64{1, -2, 0.5}},
		{method: Cubic, coeffs: []float64{0.5, 1, -0.25, 0.125}},
		{method: SplineOrder(5), coeffs: []float64{1, 0, 0, 0.1, 0, 0.01}},
	}

	for _, tc := range tests {
		t.Run(tc.method.String(), func(t *testing.T) {
			ys := testutil.Polynomial(tc.coeffs, xs)
			got, err := Interpolate(xs, ys, Positions(target), tc.method)
			if err != nil {
				t.Fatalf("Interpolate() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, testutil.Polynomial(tc.coeffs, target), 1e-8)
		})
	}
}

func TestSplineMinimalSamples(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := testutil.Polynomial([]float64{0, 0, 1}, xs)

	got, err := Interpolate(xs, ys, Positions([]float64{0.5, 1.5}), Quadratic)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.25, 2.25}, 1e-12)
}

func TestInterpolateConstructionErrors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		method Method
	}{
		{name: "cubic too few", xs: []float64{0, 1, 2}, ys: []float64{0, 1, 4}, method: Cubic},
		{name: "quadratic too few", xs: []float64{0, 1}, ys: []float64{0, 1}, method: Quadratic},
		{name: "order equals count", xs: []float64{0, 1, 2, 3, 4}, ys: []float64{0, 1, 2, 3, 4}, method: SplineOrder(5)},
		{name: "even order", xs: testutil.Positions(0, 1, 8), ys: testutil.Positions(0, 1, 8), method: SplineOrder(4)},
		{name: "negative order", xs: []float64{0, 1}, ys: []float64{0, 1}, method: SplineOrder(-1)},
		{name: "linear single", xs: []float64{1}, ys: []float64{3}, method: Linear},
		{name: "linear duplicate", xs: []float64{0, 1, 1}, ys: []float64{0, 1, 2}, method: Linear},
		{name: "cubic duplicate", xs: []float64{0, 1, 1, 2, 3}, ys: []float64{0, 1, 2, 3, 4}, method: Cubic},
		{name: "monotone single", xs: []float64{1}, ys: []float64{3}, method: MonotoneCubic},
		{name: "monotone unsorted", xs: []float64{0, 2, 1}, ys: []float64{0, 1, 2}, method: MonotoneCubic},
		{name: "empty", xs: []float64{}, ys: []float64{}, method: Nearest},
		{name: "zero method", xs: []float64{0, 1}, ys: []float64{0, 1}, method: Method{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Interpolate(tc.xs, tc.ys, Count(len(tc.xs)+3), tc.method)
			if !errors.Is(err, ErrInterpolationConstruction) {
				t.Fatalf("err = %v, want ErrInterpolationConstruction", err)
			}
		})
	}
}

func TestInterpolateUnsortedPositions(t *testing.T) {
	xs := []float64{2, 0, 1}
	ys := []float64{4, 0, 2}

	got, err := Interpolate(xs, ys, Positions([]float64{0.5, 1.5, -1, 3}), Linear)
	if err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	// Out-of-range queries take the first and last values in caller order.
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 4, 2}, 1e-12)
}

func TestInterpolateSingleSampleHolds(t *testing.T) {
	for _, m := range []Method{Nearest, Previous, Next, Zero} {
		got, err := Interpolate([]float64{2}, []float64{7}, Positions([]float64{0, 2, 5}), m)
		if err != nil {
			t.Fatalf("%v: Interpolate() error = %v", m, err)
		}
		testutil.RequireAllNearly(t, got, 7, 0)
	}
}

func TestInterpolateDoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2, 0}
	ys := []float64{9, 1, 4, 0}

	if _, err := Interpolate(xs, ys, Count(9), Cubic); err != nil {
		t.Fatalf("Interpolate() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, xs, []float64{3, 1, 2, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, ys, []float64{9, 1, 4, 0}, 0)
}

func TestAtNaN(t *testing.T) {
	ip, err := New([]float64{0, 1}, []float64{0, 1}, Linear)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !math.IsNaN(ip.At(math.NaN())) {
		t.Fatal("expected NaN for NaN query")
	}
	if ip.Method() != Linear {
		t.Fatalf("Method() = %v, want linear", ip.Method())
	}
}

func TestEvalIntoReusesDestination(t *testing.T) {
	ip, err := New([]float64{0, 1}, []float64{0, 1}, Linear)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	buf := make([]float64, 0, 4)
	out := ip.EvalInto(buf, []float64{0.25, 0.5})
	if &out[:1][0] != &buf[:1][0] {
		t.Fatal("expected destination buffer to be reused")
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0.25, 0.5}, 1e-12)

	small := make([]float64, 1)
	out = ip.EvalInto(small, []float64{0, 0.5, 1})
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.5, 1}, 1e-12)
	if small[0] != 0 {
		t.Fatalf("undersized destination was written: %v", small)
	}

	if out := ip.EvalInto(buf, nil); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}
