// Package convert turns Intel HEX data records into an array literal.
package convert

import (
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/yath/hex2array/internal/carray"
	"github.com/yath/hex2array/internal/ihex"
)

// Stats counts what a conversion emitted and dropped.
type Stats struct {
	Records int // data records emitted
	Skipped int // non-data records dropped
	Bytes   int // array elements emitted
}

// Run decodes r and writes the rendered array to w as it goes. The header is
// written before any input is read and the footer only once all input has
// been decoded; on error, output already written is left as is.
func Run(w io.Writer, r io.Reader, d carray.Dialect) (Stats, error) {
	var werr error
	emit := func(line string) bool {
		if _, err := fmt.Fprintln(w, line); err != nil {
			werr = fmt.Errorf("can't write output: %w", err)
			return false
		}
		return true
	}

	st, err := render(r, d, emit)
	if werr != nil {
		return st, werr
	}
	return st, err
}

// Lines is like Run but collects the rendered lines instead of writing
// them. On error it returns the lines rendered before the failure.
func Lines(r io.Reader, d carray.Dialect) ([]string, Stats, error) {
	var ret []string
	st, err := render(r, d, func(line string) bool {
		ret = append(ret, line)
		return true
	})
	return ret, st, err
}

// render feeds each output line to emit, stopping early if emit returns
// false.
func render(r io.Reader, d carray.Dialect, emit func(string) bool) (Stats, error) {
	var st Stats
	if !emit(d.Header()) {
		return st, nil
	}

	sc := ihex.NewScanner(r)
	for sc.Scan() {
		rec := sc.Record()
		tokens := rec.Tokens()
		if !emit(d.Line(tokens)) {
			return st, nil
		}
		st.Records++
		st.Bytes += len(tokens)
	}
	st.Skipped = sc.Skipped()
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("can't decode input: %w", err)
	}

	for _, line := range d.Footer(st.Bytes) {
		if !emit(line) {
			return st, nil
		}
	}

	glog.V(1).Infof("converted %d data records (%d bytes) from %d lines, skipped %d other records", st.Records, st.Bytes, sc.Line(), st.Skipped)
	return st, nil
}
