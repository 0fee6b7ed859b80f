package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/cwbudde/algo-peakrate/dsp/core"
	"github.com/cwbudde/algo-peakrate/dsp/rate"
	"github.com/cwbudde/algo-peakrate/dsp/signal"
)

func run(ctx context.Context, cfg config, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if !(cfg.samplingRate > 0) {
		return fmt.Errorf("sampling rate must be > 0: %v", cfg.samplingRate)
	}
	if cfg.format == formatEDF && cfg.output == "" {
		return errors.New("edf output needs --output")
	}

	peaks, err := loadPeaks(ctx, cfg, stdin)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "loaded %d peaks", len(peaks))

	bpm, err := rate.Rate(peaks,
		rate.WithSamplingRate(cfg.samplingRate),
		rate.WithDesiredLength(cfg.desiredLength),
		rate.WithMethod(cfg.method),
	)
	if err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	logger.Debugf(ctx, "derived %d rate samples with %s interpolation", len(bpm), cfg.method)
	if len(peaks) < rate.MinPeaks {
		logger.Warnf(ctx, "only %d peaks, the rate is undefined", len(peaks))
	}

	if cfg.summary {
		if err := writeSummary(stderr, bpm); err != nil {
			return err
		}
	}

	var w io.Writer = stdout
	if cfg.output != "" {
		f, cerr := os.Create(cfg.output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				err = multierror.Append(err, cerr).ErrorOrNil()
			}
		}()
		if cfg.format == formatEDF {
			if cfg.desiredLength == 0 {
				logger.Warnf(ctx, "writing one rate value per peak to edf, set --desired-length for a continuous signal")
			}
			return writeEDF(f, bpm, cfg.samplingRate)
		}
		w = f
	}

	switch cfg.format {
	case formatCSV:
		return writeCSV(w, bpm)
	default:
		return writeText(w, bpm)
	}
}

func loadPeaks(ctx context.Context, cfg config, stdin io.Reader) (rate.Peaks, error) {
	if cfg.simulateBPM > 0 {
		samples := cfg.desiredLength
		if samples == 0 {
			samples = int(math.Round(cfg.duration * cfg.samplingRate))
		}
		g := signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(cfg.samplingRate)},
			signal.WithSeed(cfg.seed),
		)
		logger.Debugf(ctx, "simulating %v bpm over %d samples", cfg.simulateBPM, samples)
		return g.PeakTrain(cfg.simulateBPM, cfg.jitter, samples)
	}

	r := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if cfg.markers {
		markers, err := readMarkers(r)
		if err != nil {
			return nil, err
		}
		logger.Debugf(ctx, "read %d markers", len(markers))
		return rate.FromMarkers(markers), nil
	}
	return readPeaks(r)
}
