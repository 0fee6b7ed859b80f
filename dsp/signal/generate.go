package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-peakrate/dsp/core"
)

// Generator creates deterministic peak trains from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for interval jitter.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured generator with generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the jitter seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the jitter seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// PeakTrain returns the sample indices of events at a mean rate of bpm per
// minute within a signal of the given length. Each interval is scaled by a
// uniform factor in [1-jitter, 1+jitter]. The first event sits half an
// interval into the signal.
func (g *Generator) PeakTrain(bpm, jitter float64, samples int) ([]int, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("peak train samples must be > 0: %d", samples)
	}
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		return nil, fmt.Errorf("peak train rate must be > 0: %f", bpm)
	}
	if jitter < 0 || jitter >= 1 {
		return nil, fmt.Errorf("peak train jitter must be in [0,1): %f", jitter)
	}

	interval := 60 / bpm * g.cfg.SampleRate
	if interval*(1-jitter) < 1 {
		return nil, fmt.Errorf("peak train interval below one sample: %f", interval*(1-jitter))
	}

	rng := rand.New(rand.NewSource(g.seed))
	var peaks []int
	pos := interval / 2
	last := -1
	for {
		idx := int(math.Round(pos))
		if idx >= samples {
			break
		}
		if idx > last {
			peaks = append(peaks, idx)
			last = idx
		}
		pos += interval * (1 + jitter*(rng.Float64()*2-1))
	}
	return peaks, nil
}

// Markers returns a series of the given length that is 1 at each peak and 0
// elsewhere.
func Markers(peaks []int, samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("marker samples must be >= 0: %d", samples)
	}
	out := make([]float64, samples)
	for _, p := range peaks {
		if p < 0 || p >= samples {
			return nil, fmt.Errorf("peak %d outside [0,%d)", p, samples)
		}
		out[p] = 1
	}
	return out, nil
}
