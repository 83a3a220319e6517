package ihex

import (
	"bufio"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Scanner reads Intel HEX text line by line and yields data records.
// Lines not starting with StartCode and records of any other type are
// skipped. Scanning stops at the first malformed record or read error.
type Scanner struct {
	sc      *bufio.Scanner
	rec     Record
	line    int
	skipped int
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next data record.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.sc.Scan() {
		s.line++
		line := s.sc.Text()
		if !strings.HasPrefix(line, string(StartCode)) {
			glog.V(2).Infof("line %d: no start code, skipping", s.line)
			continue
		}

		rec, err := parseRecord(line, s.line)
		if err != nil {
			s.err = err
			return false
		}
		if rec.Type != DataRecord {
			glog.V(2).Infof("line %d: skipping %v record", s.line, rec.Type)
			s.skipped++
			continue
		}

		glog.V(2).Infof("line %d: %d data bytes at 0x%04x", s.line, rec.Count, rec.Address)
		s.rec = rec
		return true
	}

	if err := s.sc.Err(); err != nil {
		s.err = &Error{Kind: KindRead, Line: s.line + 1, Err: err}
	}
	return false
}

// Record returns the data record found by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Line returns the number of input lines read so far.
func (s *Scanner) Line() int { return s.line }

// Skipped returns how many non-data records were dropped.
func (s *Scanner) Skipped() int { return s.skipped }

// Err returns the first malformed-record or read error, or nil at a clean
// end of input.
func (s *Scanner) Err() error { return s.err }
