// Package carray renders byte tokens as a source-code array literal.
package carray

import (
	"fmt"
	"strings"
)

// Dialect describes the shape of the rendered array: an opening
// declaration, one line of byte literals per record, a closing line and a
// size declaration.
type Dialect struct {
	Open  string
	Byte  string // fmt format applied to each token
	Close string
	// Size is emitted verbatim unless CountLiteral is set, in which case it
	// is a fmt format taking the element count.
	Size         string
	CountLiteral bool
}

// PROGMEM places the array in AVR program memory and lets the compiler
// compute its size.
var PROGMEM = Dialect{
	Open:  "const uint8_t hardcodedProgramData[] PROGMEM = {",
	Byte:  "  0x%s, ",
	Close: "};",
	Size:  "const int hardcodedProgramSize = sizeof(hardcodedProgramData);",
}

// GoSlice renders a Go byte slice. Go has no sizeof for slices, so the
// element count is written out.
var GoSlice = Dialect{
	Open:         "var hardcodedProgramData = []byte{",
	Byte:         "\t0x%s,",
	Close:        "}",
	Size:         "const hardcodedProgramSize = %d",
	CountLiteral: true,
}

// Header returns the opening declaration.
func (d Dialect) Header() string { return d.Open }

// Line renders the tokens of one record, in order, as a single line.
func (d Dialect) Line(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&b, d.Byte, t)
	}
	return b.String()
}

// Footer returns the closing line and the size declaration for an array of
// count elements.
func (d Dialect) Footer(count int) []string {
	size := d.Size
	if d.CountLiteral {
		size = fmt.Sprintf(d.Size, count)
	}
	return []string{d.Close, size}
}
