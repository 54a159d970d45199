// Package scanner extracts the fields of one numeric token from a byte span.
//
// The scanner makes a single forward pass and performs no allocation. It never
// rejects input: malformed text simply produces a Record with Digits == 0,
// which the caller interprets.
package scanner

// Record holds the decomposed fields of a number-like token: sign, mantissa
// digits accumulated into a uint64, and the combined decimal exponent from the
// fractional part and an explicit e/E field.
//
// Mant is accumulated modulo 2^64 and is only meaningful when Digits <= 19;
// Digits always counts the true number of mantissa digits consumed.
type Record struct {
	Neg         bool
	Mant        uint64
	Digits      int
	ExpDigits   int
	HasExpField bool
	Exp         int64
	TokStart    int // first non-whitespace byte of the token
	End         int // one past the last byte consumed
}

// expCap bounds the explicit exponent accumulator. Digits past the cap are
// still consumed and counted, only the accumulated magnitude stops growing,
// so a huge exponent field can never wrap back into range.
const expCap = 10000

func isSpace(c byte) bool {
	return c == ' ' || ('\t' <= c && c <= '\r')
}

// Scan reads one numeric token from buf[start:stop]. It returns false only
// when the span holds nothing but whitespace; any other input yields a Record
// whose Digits and HasExpField fields tell the caller what was found.
//
// Accepted sign spellings are '+', '-' and '~', the latter two both meaning
// negative. A decimal point and an exponent field are optional; an exponent
// field with no digits after a mantissa is rolled back so the token ends at
// the last mantissa byte.
func Scan(buf []byte, start, stop int) (Record, bool) {
	i := start
	for i < stop && isSpace(buf[i]) {
		i++
	}
	if i >= stop {
		return Record{}, false
	}

	rec := Record{TokStart: i}
	switch buf[i] {
	case '+':
		i++
	case '-', '~':
		rec.Neg = true
		i++
	}

	i, rec.Mant, rec.Digits = scanDigits(buf, i, stop, rec.Mant)

	if i < stop && buf[i] == '.' {
		i++
		var frac int
		i, rec.Mant, frac = scanDigits(buf, i, stop, rec.Mant)
		rec.Digits += frac
		rec.Exp = -int64(frac)
	}

	if i < stop && (buf[i] == 'e' || buf[i] == 'E') {
		fieldStart := i
		i++
		esign := int64(1)
		if i < stop && (buf[i] == '+' || buf[i] == '-') {
			if buf[i] == '-' {
				esign = -1
			}
			i++
		}
		e := int64(0)
		for i < stop && '0' <= buf[i] && buf[i] <= '9' {
			if e < expCap {
				e = e*10 + int64(buf[i]-'0')
			}
			i++
			rec.ExpDigits++
		}
		if rec.ExpDigits == 0 {
			// "1e", "1e+": the field never materialized. Give the
			// bytes back so the mantissa alone is the token.
			i = fieldStart
		} else {
			rec.HasExpField = true
			rec.Exp += esign * e
		}
	}

	rec.End = i
	return rec, true
}
