package ihex

import (
	"errors"
	"fmt"
)

// Kind classifies why a conversion failed.
type Kind uint

const (
	KindNotFound  Kind = iota + 1 // input file does not exist
	KindRead                      // input could not be opened or read
	KindMalformed                 // a record field is not valid hex or is truncated
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "file not found"
	case KindRead:
		return "read error"
	case KindMalformed:
		return "malformed record"
	}
	return fmt.Sprintf("Kind(%d)", uint(k))
}

// Error is returned for every failure while reading or decoding input.
// Line is the 1-based input line, or 0 if the failure is not tied to a line.
type Error struct {
	Kind Kind
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(k Kind, line int, format string, args ...interface{}) error {
	return &Error{Kind: k, Line: line, Err: fmt.Errorf(format, args...)}
}

// Wrap tags err with k. A nil err stays nil.
func Wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
