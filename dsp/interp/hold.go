package interp

import "sort"

// nearest picks the sample whose midpoint-bounded cell contains x. A query
// exactly on a midpoint resolves to the lower sample.
type nearest struct {
	mids []float64
	ys   []float64
}

func newNearest(xs, ys []float64) nearest {
	mids := make([]float64, len(xs)-1)
	for i := range mids {
		mids[i] = (xs[i] + xs[i+1]) / 2
	}
	return nearest{mids: mids, ys: ys}
}

func (n nearest) at(x float64) float64 {
	return n.ys[sort.SearchFloat64s(n.mids, x)]
}

// previous holds the last sample with position <= x.
type previous struct {
	xs, ys []float64
}

func (p previous) at(x float64) float64 {
	i := sort.Search(len(p.xs), func(i int) bool { return p.xs[i] > x }) - 1
	if i < 0 {
		i = 0
	}
	return p.ys[i]
}

// next holds the first sample with position >= x.
type next struct {
	xs, ys []float64
}

func (n next) at(x float64) float64 {
	i := sort.SearchFloat64s(n.xs, x)
	if i >= len(n.xs) {
		i = len(n.xs) - 1
	}
	return n.ys[i]
}
