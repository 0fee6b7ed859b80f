package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies an interpolation kernel family.
type Kind int

const (
	kindInvalid Kind = iota
	// KindNearest selects the closest sample.
	KindNearest
	// KindLinear joins samples with straight segments.
	KindLinear
	// KindPrevious holds the preceding sample.
	KindPrevious
	// KindNext holds the following sample.
	KindNext
	// KindSpline fits an interpolating B-spline of a given order.
	KindSpline
	// KindMonotoneCubic fits a monotonicity-preserving cubic Hermite curve.
	KindMonotoneCubic
)

// Method selects an interpolation kernel. Spline methods carry their order.
// The zero Method is invalid.
type Method struct {
	kind  Kind
	order int
}

// Predefined methods. [Zero], [SLinear], [Quadratic] and [Cubic] are B-splines
// of order 0 to 3.
var (
	Nearest       = Method{kind: KindNearest}
	Linear        = Method{kind: KindLinear}
	Previous      = Method{kind: KindPrevious}
	Next          = Method{kind: KindNext}
	MonotoneCubic = Method{kind: KindMonotoneCubic}

	Zero      = SplineOrder(0)
	SLinear   = SplineOrder(1)
	Quadratic = SplineOrder(2)
	Cubic     = SplineOrder(3)
)

// DefaultMethod is the method used when callers do not choose one.
var DefaultMethod = Quadratic

// SplineOrder returns a B-spline method of degree k. Whether k is usable is
// only known once the samples are available, see [New].
func SplineOrder(k int) Method {
	return Method{kind: KindSpline, order: k}
}

// Kind returns the kernel family.
func (m Method) Kind() Kind { return m.kind }

// Order returns the spline order and true for spline methods.
func (m Method) Order() (int, bool) {
	if m.kind != KindSpline {
		return 0, false
	}
	return m.order, true
}

var splineNames = map[int]string{
	0: "zero",
	1: "slinear",
	2: "quadratic",
	3: "cubic",
}

// String returns the canonical method name accepted by [ParseMethod].
func (m Method) String() string {
	switch m.kind {
	case KindNearest:
		return "nearest"
	case KindLinear:
		return "linear"
	case KindPrevious:
		return "previous"
	case KindNext:
		return "next"
	case KindMonotoneCubic:
		return "monotone_cubic"
	case KindSpline:
		if name, ok := splineNames[m.order]; ok {
			return name
		}
		return strconv.Itoa(m.order)
	default:
		return "invalid"
	}
}

// ParseMethod maps a method name, or a non-negative decimal spline order, to
// a Method. Names are case-insensitive and '-' is accepted for '_'.
func ParseMethod(s string) (Method, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch name {
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	case "previous":
		return Previous, nil
	case "next":
		return Next, nil
	case "monotone_cubic":
		return MonotoneCubic, nil
	}
	for order, n := range splineNames {
		if n == name {
			return SplineOrder(order), nil
		}
	}
	if k, err := strconv.Atoi(name); err == nil && k >= 0 {
		return SplineOrder(k), nil
	}
	return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Set implements the flag.Value interface.
func (m *Method) Set(s string) error {
	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type returns the flag type name.
func (m *Method) Type() string { return "method" }

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m.kind == kindInvalid {
		return nil, fmt.Errorf("%w: zero value", ErrUnknownMethod)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
