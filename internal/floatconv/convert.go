package floatconv

import (
	"errors"
	"strconv"

	"github.com/pangliyang/fastreal/internal/scanner"
)

// Result is one successful parse: the value, the number of bytes consumed
// counted from the span start, and whether the bounded path produced it.
type Result[T Float] struct {
	Value T
	N     int
	Fast  bool
}

// Parse reads one numeric token from buf[start:stop]. The second return is
// false when no token is recognized; that is the only failure mode.
func Parse[T Float](buf []byte, start, stop int) (Result[T], bool) {
	rec, ok := scanner.Scan(buf, start, stop)
	if !ok {
		return Result[T]{}, false
	}
	p := profileOf[T]()
	switch {
	case rec.Digits == 0:
		if rec.HasExpField {
			// An exponent field with no mantissa ("e5") is garbage.
			return Result[T]{}, false
		}
		return special[T](buf, rec, start, stop)
	case rec.Digits <= fastDigits && rec.ExpDigits <= fastDigits &&
		p.minExp <= rec.Exp && rec.Exp <= p.maxExp && rec.Mant <= p.maxMant:
		return fastValue(p, rec, start), true
	default:
		return fallback(p, buf, rec, start)
	}
}

// fastValue computes the result with one integer-to-float conversion and one
// multiply or divide. Both operands are exact and the operation rounds once,
// so the result is correctly rounded.
func fastValue[T Float](p *profile[T], rec scanner.Record, start int) Result[T] {
	f := T(rec.Mant)
	if rec.Exp < 0 {
		f /= p.pow10[-rec.Exp]
	} else {
		f *= p.pow10[rec.Exp]
	}
	if rec.Neg {
		f = -f
	}
	return Result[T]{Value: f, N: rec.End - start, Fast: true}
}

// fallback re-presents the token bytes to strconv.ParseFloat, the general
// correctly-rounded converter. An out-of-range token still carries the right
// signed infinity or zero, so a range error keeps the value.
func fallback[T Float](p *profile[T], buf []byte, rec scanner.Record, start int) (Result[T], bool) {
	s := string(buf[rec.TokStart:rec.End])
	if s[0] == '~' {
		s = "-" + s[1:]
	}
	v, err := strconv.ParseFloat(s, p.bitSize)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return Result[T]{}, false
		}
	}
	return Result[T]{Value: T(v), N: rec.End - start}, true
}
