// Package floatconv turns a scanned numeric token into a float32 or float64.
//
// A bounded fast path covers tokens whose mantissa fits a uint64 exactly and
// whose decimal exponent stays inside the range where one multiply or divide
// by an exact power of ten is correctly rounded. Everything else goes to
// strconv, the general correctly-rounded converter.
package floatconv

import "math"

// Float is the set of widths the converter instantiates over.
type Float interface {
	float32 | float64
}

// fastDigits is the most decimal digits a uint64 accumulator is guaranteed to
// hold without loss. The same margin gates the explicit exponent digit run.
const fastDigits = 19

// profile carries the per-width constants of the bounded path: the type's
// mantissa width, the exponent range over which the power-of-ten table is
// exact, and the largest mantissa that converts from uint64 without rounding.
// One profile per width is built at init and shared read-only by every call.
type profile[T Float] struct {
	bitSize  int
	mantBits int
	minExp   int64
	maxExp   int64
	maxMant  uint64
	pow10    [23]T
}

var (
	f64 = newProfile[float64](64, 53, 22)
	f32 = newProfile[float32](32, 24, 10)
)

func newProfile[T Float](bitSize, mantBits int, fastExp int64) profile[T] {
	p := profile[T]{
		bitSize:  bitSize,
		mantBits: mantBits,
		minExp:   -fastExp,
		maxExp:   fastExp,
		maxMant:  1 << mantBits,
	}
	x := T(1)
	for i := range p.pow10 {
		p.pow10[i] = x
		x *= 10
	}
	// Every table entry inside the fast range must be the exact power or
	// correct rounding is lost. math.Pow10 is exact up to 10^22, so any
	// mismatch is an unrecoverable construction failure.
	for e := int64(0); e <= fastExp; e++ {
		if float64(p.pow10[e]) != math.Pow10(int(e)) {
			panic("floatconv: inexact power-of-ten table entry")
		}
	}
	if !math.IsNaN(float64(T(math.NaN()))) || !math.IsInf(float64(T(math.Inf(1))), 1) {
		panic("floatconv: special values not representable")
	}
	return p
}

func profileOf[T Float]() *profile[T] {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return any(&f32).(*profile[T])
	}
	return any(&f64).(*profile[T])
}
