// Package fastreal parses decimal text into float32 or float64 values.
//
// The common case — a token whose digits fit a uint64 and whose exponent is
// small — is computed with integer arithmetic and one table lookup, without
// allocating. Everything else is handed to strconv, so every input still gets
// the correctly-rounded nearest value.
//
// Accepted tokens: optional leading whitespace, an optional sign ('+', '-' or
// '~', the last two both meaning negative), decimal digits with an optional
// fractional part and e/E exponent, or the case-insensitive specials nan, inf
// and infinity. There is exactly one failure mode, "no numeric token here",
// reported as ok == false (or as an error wrapping ErrSyntax from ParseErr).
package fastreal

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/pangliyang/fastreal/internal/floatconv"
)

// ErrSyntax is reported by ParseErr when the input holds no numeric token.
var ErrSyntax = errors.New("invalid number syntax")

// Result describes one float64 parse: the value, the number of bytes consumed
// from the span start (leading whitespace included), and whether the bounded
// fast path produced it.
type Result = floatconv.Result[float64]

// Result32 is Result for float32 parses.
type Result32 = floatconv.Result[float32]

// ParseSpan parses one numeric token from buf[start:stop]. The span bounds
// are a caller contract: start <= stop and both within buf. buf is borrowed
// for the duration of the call and never retained.
func ParseSpan(buf []byte, start, stop int) (Result, bool) {
	return floatconv.Parse[float64](buf, start, stop)
}

// ParseSpan32 is ParseSpan for float32.
func ParseSpan32(buf []byte, start, stop int) (Result32, bool) {
	return floatconv.Parse[float32](buf, start, stop)
}

// ParseString parses one numeric token from the whole of s, with diagnostics.
func ParseString(s string) (Result, bool) {
	b := stringBytes(s)
	return floatconv.Parse[float64](b, 0, len(b))
}

// ParseString32 is ParseString for float32.
func ParseString32(s string) (Result32, bool) {
	b := stringBytes(s)
	return floatconv.Parse[float32](b, 0, len(b))
}

// Parse parses one numeric token from the whole of s.
// ok is false when s holds no numeric token.
func Parse(s string) (v float64, ok bool) {
	r, ok := ParseString(s)
	return r.Value, ok
}

// Parse32 is Parse for float32.
func Parse32(s string) (v float32, ok bool) {
	r, ok := ParseString32(s)
	return r.Value, ok
}

// ParseBytes parses one numeric token from the whole of b.
func ParseBytes(b []byte) (v float64, ok bool) {
	r, ok := floatconv.Parse[float64](b, 0, len(b))
	return r.Value, ok
}

// ParseBytes32 is ParseBytes for float32.
func ParseBytes32(b []byte) (v float32, ok bool) {
	r, ok := floatconv.Parse[float32](b, 0, len(b))
	return r.Value, ok
}

// ParseErr is Parse with an error form for callers that propagate errors.
func ParseErr(s string) (float64, error) {
	v, ok := Parse(s)
	if !ok {
		return 0, fmt.Errorf("fastreal: cannot parse %q: %w", s, ErrSyntax)
	}
	return v, nil
}

// stringBytes views the bytes of s without copying. The parser never writes
// to or retains the slice, which keeps the view legal.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
