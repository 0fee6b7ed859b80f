package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/hashicorp/go-multierror"

	"github.com/cwbudde/algo-peakrate/dsp/core"
	"github.com/cwbudde/algo-peakrate/dsp/rate"
	"github.com/cwbudde/algo-peakrate/stats/summary"
)

// maxRecordSamples is the largest single-signal record allowed by the EDF
// 61440 byte record limit.
const maxRecordSamples = 30720

func scanFields(r io.Reader, fn func(line int, field string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields[0]); err != nil {
			return err
		}
	}
	return sc.Err()
}

func readPeaks(r io.Reader) (rate.Peaks, error) {
	var peaks rate.Peaks
	err := scanFields(r, func(line int, field string) error {
		v, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("line %d: invalid peak index %q", line, field)
		}
		peaks = append(peaks, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return peaks, nil
}

func readMarkers(r io.Reader) ([]float64, error) {
	var markers []float64
	err := scanFields(r, func(line int, field string) error {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid marker %q", line, field)
		}
		markers = append(markers, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return markers, nil
}

func writeText(w io.Writer, bpm []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range bpm {
		if _, err := fmt.Fprintln(bw, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSV(w io.Writer, bpm []float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "sample,rate"); err != nil {
		return err
	}
	for i, v := range bpm {
		if _, err := fmt.Fprintf(bw, "%d,%s\n", i, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func finiteRange(data []float64) (lo, hi float64) {
	s := summary.Calculate(data)
	if s.Finite == 0 {
		return 0, 1
	}
	lo, hi = s.Min, s.Max
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	// The header keeps two decimals.
	return math.Floor(lo*100) / 100, math.Ceil(hi*100) / 100
}

// writeEDF stores bpm as a single "Rate" signal in one-second records. The
// last record is padded with the final value. Non-finite values are clamped
// to the physical range, NaN to its minimum.
func writeEDF(ws io.WriteSeeker, bpm []float64, samplingRate float64) (err error) {
	perRecord := int(math.Round(samplingRate))
	if perRecord < 1 || perRecord > maxRecordSamples {
		return fmt.Errorf("edf: %v Hz does not fit a one-second record", samplingRate)
	}
	if len(bpm) == 0 {
		return fmt.Errorf("edf: no rate samples")
	}

	pmin, pmax := finiteRange(bpm)
	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "X X X X",
		RecordingID:        "Startdate X X X X peakrate",
		StartTime:          time.Now(),
		DataRecordDuration: time.Second,
		SignalCount:        1,
		Signals: []edf.SignalHeader{
			{
				Label:             "Rate",
				PhysicalDimension: "bpm",
				PhysicalMin:       pmin,
				PhysicalMax:       pmax,
				DigitalMin:        math.MinInt16,
				DigitalMax:        math.MaxInt16,
				SamplesPerRecord:  perRecord,
			},
		},
	}

	ew, err := edf.Create(ws, hdr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ew.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	record := make([]float64, perRecord)
	last := bpm[len(bpm)-1]
	for start := 0; start < len(bpm); start += perRecord {
		for i := range record {
			v := last
			if start+i < len(bpm) {
				v = bpm[start+i]
			}
			if math.IsNaN(v) {
				v = pmin
			}
			record[i] = core.Clamp(v, pmin, pmax)
		}
		if err := ew.WriteRecord([][]float64{record}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(w io.Writer, bpm []float64) error {
	s := summary.Calculate(bpm)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\tFinite\tMin [bpm]\tMean [bpm]\tMax [bpm]\tStd [bpm]\n")
	fmt.Fprintf(tw, "-------\t------\t---------\t----------\t---------\t---------\n")
	if s.Finite == 0 {
		fmt.Fprintf(tw, "%d\t0\t-\t-\t-\t-\n", s.Length)
	} else {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n", s.Length, s.Finite, s.Min, s.Mean, s.Max, s.Std)
	}
	return tw.Flush()
}
