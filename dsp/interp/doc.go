// Package interp resamples irregularly spaced scalar series onto arbitrary
// target positions.
//
// Available methods:
//
//   - [Nearest]:        value of the closest sample, ties go to the lower one
//   - [Previous]:       hold the last sample at or before the query
//   - [Next]:           hold the first sample at or after the query
//   - [Linear]:         piecewise linear
//   - [SplineOrder]:    interpolating B-spline of degree k
//     ([Zero], [SLinear], [Quadratic] and [Cubic] are orders 0 to 3)
//   - [MonotoneCubic]:  shape-preserving piecewise cubic Hermite (PCHIP)
//
// Every method except [MonotoneCubic] clamps queries outside the sample range
// to the first or last value. [MonotoneCubic] extends its boundary cubic
// instead, so it can overshoot outside the data.
//
// The target is a [Grid]: either [Count] evenly spaced positions spanning the
// sample range, or explicit [Positions].
//
// [Interpolate] returns the input values unchanged whenever the target has the
// same number of points as the input, without comparing positions. Callers
// that need to move a series onto a different grid of equal size must build
// an [Interpolator] with [New] and evaluate it directly.
package interp
