package interp

import (
	"fmt"

	"github.com/cwbudde/algo-peakrate/dsp/core"
)

// Grid is the set of positions an interpolant is evaluated at: either a
// number of evenly spaced points across the sample range, or explicit
// positions.
type Grid struct {
	count     int
	positions []float64
	explicit  bool
}

// Count returns a grid of n evenly spaced positions spanning the first to the
// last sample position, both included. No extrapolation margin is added.
func Count(n int) Grid {
	return Grid{count: n}
}

// Positions returns a grid of explicit positions. They may lie outside the
// sample range. The slice is not copied.
func Positions(xs []float64) Grid {
	return Grid{count: len(xs), positions: xs, explicit: true}
}

// Len returns the number of target positions.
func (g Grid) Len() int { return g.count }

func (g Grid) validate() error {
	if g.count < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidGrid, g.count)
	}
	return nil
}

// resolve expands a count grid over [first, last]. The positions are the
// caller's first and last, not the sorted extremes.
func (g Grid) resolve(first, last float64) []float64 {
	if g.explicit {
		return g.positions
	}
	return core.Linspace(first, last, g.count)
}
