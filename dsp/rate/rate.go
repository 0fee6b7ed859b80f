package rate

import (
	"errors"

	"github.com/cwbudde/algo-peakrate/dsp/core"
	"github.com/cwbudde/algo-peakrate/dsp/interp"
)

// PerMinute converts a period in seconds to events per minute.
const PerMinute = 60

var (
	// ErrInvalidPeaks indicates negative or non-increasing peak indices.
	ErrInvalidPeaks = errors.New("rate: invalid peaks")
	// ErrInvalidSamplingRate indicates a non-positive or non-finite sampling rate.
	ErrInvalidSamplingRate = errors.New("rate: invalid sampling rate")
	// ErrDesiredLength indicates an output length that is negative or does not
	// cover the last peak.
	ErrDesiredLength = errors.New("rate: invalid desired length")
	// ErrNoProvider indicates a nil PeriodProvider.
	ErrNoProvider = errors.New("rate: no period provider")
)

// DefaultMethod is the interpolation used between peaks. It does not
// overshoot, which keeps the rate within physiologically plausible bounds.
var DefaultMethod = interp.MonotoneCubic

type config struct {
	samplingRate  float64
	desiredLength int
	method        interp.Method
	provider      PeriodProvider
}

// Option configures Rate.
type Option func(*config)

// WithSamplingRate sets the sampling rate of the signal the peaks were
// detected in, in Hz. Non-positive values are ignored.
func WithSamplingRate(fs float64) Option {
	return func(cfg *config) {
		if fs > 0 {
			cfg.samplingRate = fs
		}
	}
}

// WithProcessorConfig takes the sampling rate from a shared processor config.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return WithSamplingRate(pc.SampleRate)
}

// WithDesiredLength resamples the rate onto n samples, usually the length of
// the signal. Non-positive values leave one rate value per peak.
func WithDesiredLength(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.desiredLength = n
		}
	}
}

// WithMethod selects the interpolation between peaks. The zero Method is
// ignored.
func WithMethod(m interp.Method) Option {
	return func(cfg *config) {
		if m != (interp.Method{}) {
			cfg.method = m
		}
	}
}

// WithPeriodProvider replaces the period computation. Nil is ignored.
func WithPeriodProvider(p PeriodProvider) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.provider = p
		}
	}
}

func defaultConfig() config {
	return config{
		samplingRate: core.DefaultSampleRate,
		method:       DefaultMethod,
		provider:     PeakPeriods{},
	}
}

// Rate returns the event rate in events per minute. By default the peaks
// are sampled at 1000 Hz, one value per peak is returned and resampling uses
// DefaultMethod.
func Rate(peaks Peaks, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return Derive(cfg.provider, peaks, cfg.samplingRate, cfg.desiredLength, cfg.method)
}

// Derive obtains periods from provider and converts them to a rate. The
// periods are used as returned, whatever their length.
func Derive(provider PeriodProvider, peaks Peaks, samplingRate float64, desiredLength int, method interp.Method) ([]float64, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	periods, err := provider.Periods(peaks, samplingRate, desiredLength, method)
	if err != nil {
		return nil, err
	}
	return FromPeriods(periods), nil
}

// FromPeriods returns PerMinute / period for every element, following IEEE
// division: zero gives +Inf, negative periods give negative rates.
func FromPeriods(periods []float64) []float64 {
	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = PerMinute / p
	}
	return out
}
