package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-peakrate/dsp/core"
	"github.com/cwbudde/algo-peakrate/dsp/interp"
	"github.com/cwbudde/algo-peakrate/dsp/rate"
)

type format string

const (
	formatText format = "text"
	formatCSV  format = "csv"
	formatEDF  format = "edf"
)

func (f *format) String() string { return string(*f) }

func (f *format) Set(s string) error {
	switch v := format(strings.ToLower(s)); v {
	case formatText, formatCSV, formatEDF:
		*f = v
		return nil
	}
	return fmt.Errorf("unknown format %q (text, csv, edf)", s)
}

func (f *format) Type() string { return "format" }

type config struct {
	samplingRate  float64
	desiredLength int
	method        interp.Method
	markers       bool

	simulateBPM float64
	duration    float64
	jitter      float64
	seed        int64

	format      format
	input       string
	output      string
	summary     bool
	listMethods bool
}

func defaultConfig() config {
	return config{
		samplingRate: core.DefaultSampleRate,
		method:       rate.DefaultMethod,
		duration:     60,
		seed:         1,
		format:       formatText,
	}
}

func newFlagSet(cfg *config, handling pflag.ErrorHandling) *pflag.FlagSet {
	fs := pflag.NewFlagSet("peakrate", handling)
	fs.Float64Var(&cfg.samplingRate, "sampling-rate", cfg.samplingRate, "sampling rate of the signal the peaks were detected in, in Hz")
	fs.IntVar(&cfg.desiredLength, "desired-length", cfg.desiredLength, "resample the rate onto this many samples (0 keeps one value per peak)")
	fs.Var(&cfg.method, "method", "interpolation between peaks (see --list-methods)")
	fs.BoolVar(&cfg.markers, "markers", cfg.markers, "input lines are 0/1 markers instead of peak indices")
	fs.Float64Var(&cfg.simulateBPM, "simulate-bpm", cfg.simulateBPM, "generate a synthetic peak train at this rate instead of reading input")
	fs.Float64Var(&cfg.duration, "duration", cfg.duration, "length of the synthetic train in seconds when --desired-length is not set")
	fs.Float64Var(&cfg.jitter, "jitter", cfg.jitter, "relative interval jitter of the synthetic train, in [0,1)")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "seed of the synthetic train")
	fs.VarP(&cfg.format, "format", "f", "output format: text, csv or edf")
	fs.StringVarP(&cfg.output, "output", "o", cfg.output, "output file (default stdout, required for edf)")
	fs.BoolVar(&cfg.summary, "summary", cfg.summary, "print a rate summary table to stderr")
	fs.BoolVar(&cfg.listMethods, "list-methods", cfg.listMethods, "list interpolation methods and exit")
	return fs
}

var methodHelp = []struct {
	method interp.Method
	help   string
}{
	{interp.MonotoneCubic, "shape-preserving cubic, extrapolates (default)"},
	{interp.Linear, "piecewise linear"},
	{interp.Nearest, "closest peak"},
	{interp.Previous, "hold the preceding peak"},
	{interp.Next, "hold the following peak"},
	{interp.Zero, "B-spline order 0"},
	{interp.SLinear, "B-spline order 1"},
	{interp.Quadratic, "B-spline order 2"},
	{interp.Cubic, "B-spline order 3"},
}

func printMethods(w io.Writer) {
	for _, m := range methodHelp {
		fmt.Fprintf(w, "%-16s %s\n", m.method, m.help)
	}
	fmt.Fprintf(w, "%-16s %s\n", "<k>", "B-spline of odd order k, or 2")
}
