// Command peakrate converts detected peak positions into an instantaneous
// rate signal in events per minute.
//
// Usage:
//
//	peakrate [flags] [peaks-file]
//
// The input holds one sample index per line. Blank lines and lines starting
// with '#' are skipped, and only the first comma- or space-separated field is
// read. With --markers each line is a 0/1 marker of the original signal
// instead. Without a file, standard input is read.
//
// Examples:
//
//	peakrate rpeaks.txt
//	peakrate --sampling-rate 250 --desired-length 75000 --method linear rpeaks.txt
//	peakrate --markers --format csv markers.txt
//	peakrate --simulate-bpm 72 --jitter 0.1 --desired-length 60000 --format edf --output hr.edf
//	peakrate --list-methods
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
)

func main() {
	cfg := defaultConfig()
	loggerLevel := logger.LevelWarning

	fs := newFlagSet(&cfg, pflag.ExitOnError)
	fs.Var(&loggerLevel, "log-level", "Log level")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peakrate [flags] [peaks-file]\n\n")
		fmt.Fprintf(os.Stderr, "Converts peak positions into a rate signal in events per minute.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if cfg.listMethods {
		printMethods(os.Stdout)
		return
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		fs.Usage()
		os.Exit(2)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		belt.Flush(ctx)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
