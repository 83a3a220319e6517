package ihex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, input string) ([]Record, *Scanner) {
	t.Helper()
	sc := NewScanner(strings.NewReader(input))
	var ret []Record
	for sc.Scan() {
		ret = append(ret, sc.Record())
	}
	return ret, sc
}

func TestScanner(t *testing.T) {
	const input = "" +
		"; blink.hex\n" +
		"\n" +
		":020000040000FA\n" +
		":100000000C9434000C9446000C9446000C9446006A\r\n" +
		"  :0100000042BD\n" +
		":0400100001020304E2\n" +
		":0400000500000000F7\n" +
		":00000001FF\n"

	recs, sc := scanAll(t, input)
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}

	want := []Record{
		{Count: 0x10, Type: DataRecord, Payload: "0C9434000C9446000C9446000C944600", Checksum: "6A"},
		{Count: 4, Address: 0x10, Type: DataRecord, Payload: "01020304", Checksum: "E2"},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if got, want := sc.Skipped(), 3; got != want {
		t.Errorf("Skipped() = %d, want %d", got, want)
	}
	if got, want := sc.Line(), 8; got != want {
		t.Errorf("Line() = %d, want %d", got, want)
	}
}

func TestScanner_NonDataPayloadIgnored(t *testing.T) {
	for _, typ := range []string{"01", "02", "03", "04", "05", "7F"} {
		t.Run(typ, func(t *testing.T) {
			recs, sc := scanAll(t, ":04000000"[:7]+typ+"DEADBEEF00\n")
			if err := sc.Err(); err != nil {
				t.Fatalf("Err() = %v, want nil", err)
			}
			if len(recs) != 0 {
				t.Errorf("got %d records, want 0", len(recs))
			}
		})
	}
}

func TestScanner_StopsOnMalformed(t *testing.T) {
	const input = ":0100000001FE\n:GG00000001FE\n:0100000002FD\n"

	recs, sc := scanAll(t, input)
	if len(recs) != 1 {
		t.Errorf("got %d records before failure, want 1", len(recs))
	}

	err := sc.Err()
	if err == nil {
		t.Fatal("Err() = nil, want non-nil")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("Err() = %T, want *Error", err)
	}
	if e.Kind != KindMalformed || e.Line != 2 {
		t.Errorf("Err() = {Kind: %v, Line: %d}, want {Kind: %v, Line: 2}", e.Kind, e.Line, KindMalformed)
	}
	if sc.Scan() {
		t.Error("Scan() after failure = true, want false")
	}
}

func TestScanner_Empty(t *testing.T) {
	recs, sc := scanAll(t, "")
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}
