// Package ihex decodes the subset of Intel HEX needed to pull data records
// out of a firmware image. Checksums are not verified and address records
// are ignored; only the payload text of data records is kept.
package ihex

import (
	"errors"
	"fmt"
	"strconv"
)

// StartCode begins every record line.
const StartCode = ':'

type RecordType byte

const (
	DataRecord                   RecordType = 0x00
	EOFRecord                    RecordType = 0x01
	ExtendedSegmentAddressRecord RecordType = 0x02
	StartSegmentAddressRecord    RecordType = 0x03
	ExtendedLinearAddressRecord  RecordType = 0x04
	StartLinearAddressRecord     RecordType = 0x05
)

func (t RecordType) String() string {
	switch t {
	case DataRecord:
		return "data"
	case EOFRecord:
		return "end of file"
	case ExtendedSegmentAddressRecord:
		return "extended segment address"
	case StartSegmentAddressRecord:
		return "start segment address"
	case ExtendedLinearAddressRecord:
		return "extended linear address"
	case StartLinearAddressRecord:
		return "start linear address"
	}
	return fmt.Sprintf("unknown (0x%02x)", byte(t))
}

// Record is a single decoded line. Payload and Checksum hold the source text
// unchanged, so bytes can be re-emitted exactly as they were written.
type Record struct {
	Count    byte
	Address  uint16
	Type     RecordType
	Payload  string
	Checksum string
}

// Tokens splits the payload into its two-character byte tokens.
func (r Record) Tokens() []string {
	ret := make([]string, 0, len(r.Payload)/2)
	for i := 0; i+2 <= len(r.Payload); i += 2 {
		ret = append(ret, r.Payload[i:i+2])
	}
	return ret
}

// Bytes decodes the payload. It fails if a token is not valid hex.
func (r Record) Bytes() ([]byte, error) {
	return parseBytes(r.Payload)
}

// field is one row of the record layout. Fields are laid out back to back
// after the start code; width may depend on the byte count decoded so far.
type field struct {
	name     string
	width    func(count int) int
	optional bool
	set      func(r *Record, text string) error
}

func fixed(n int) func(int) int { return func(int) int { return n } }

var layout = []field{
	{name: "byte count", width: fixed(2), set: func(r *Record, text string) error {
		v, err := parseHex(text, 8)
		r.Count = byte(v)
		return err
	}},
	{name: "address", width: fixed(4), set: func(r *Record, text string) error {
		v, err := parseHex(text, 16)
		r.Address = uint16(v)
		return err
	}},
	{name: "record type", width: fixed(2), set: func(r *Record, text string) error {
		v, err := parseHex(text, 8)
		r.Type = RecordType(v)
		return err
	}},
	// Only the length is checked; tokens are passed through as written.
	{name: "data", width: func(count int) int { return 2 * count }, set: func(r *Record, text string) error {
		r.Payload = text
		return nil
	}},
	// Never verified.
	{name: "checksum", width: fixed(2), optional: true, set: func(r *Record, text string) error {
		r.Checksum = text
		return nil
	}},
}

// ParseRecord decodes one record line, which must start with StartCode.
// Characters after the checksum are ignored.
func ParseRecord(line string) (Record, error) {
	return parseRecord(line, 0)
}

func parseRecord(line string, lineno int) (Record, error) {
	var rec Record
	if len(line) == 0 || line[0] != StartCode {
		return rec, newError(KindMalformed, lineno, "missing start code %q", StartCode)
	}

	pos := 1
	for _, f := range layout {
		w := f.width(int(rec.Count))
		if pos+w > len(line) {
			if f.optional {
				break
			}
			return rec, newError(KindMalformed, lineno, "%s: want %d characters at offset %d, have %d", f.name, w, pos, len(line)-pos)
		}
		text := line[pos : pos+w]
		if err := f.set(&rec, text); err != nil {
			return rec, newError(KindMalformed, lineno, "%s %q: %w", f.name, text, err)
		}
		pos += w
	}
	return rec, nil
}

func parseHex(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, ne.Err
		}
		return 0, err
	}
	return v, nil
}

func parseBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.New("odd number of hex digits")
	}
	ret := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := parseHex(s[i:i+2], 8)
		if err != nil {
			return nil, err
		}
		ret = append(ret, byte(b))
	}
	return ret, nil
}
