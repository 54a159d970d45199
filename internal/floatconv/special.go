package floatconv

import (
	"math"

	"github.com/pangliyang/fastreal/internal/scanner"
)

// lower(c) is the lower-case form of an ASCII letter. Lower of a non-letter
// is some other non-letter, which never matches a letter prefix.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// prefixFoldLen reports how many leading bytes of buf[i:stop] match prefix
// with case ignored. prefix must be all lower-case.
func prefixFoldLen(buf []byte, i, stop int, prefix string) int {
	n := 0
	for n < len(prefix) && i+n < stop && lower(buf[i+n]) == prefix[n] {
		n++
	}
	return n
}

// special recognizes nan, inf and infinity anchored at the scanner's stopping
// point, after a sign was possibly consumed. "inf" is matched first and
// extended to "infinity" only when the whole "inity" suffix follows, so
// "infin" still consumes exactly three bytes.
func special[T Float](buf []byte, rec scanner.Record, start, stop int) (Result[T], bool) {
	i := rec.End
	if i >= stop {
		return Result[T]{}, false
	}
	if prefixFoldLen(buf, i, stop, "nan") == 3 {
		// The sign is dropped: NaN carries no sign contract.
		return Result[T]{Value: T(math.NaN()), N: i + 3 - start}, true
	}
	if prefixFoldLen(buf, i, stop, "inf") == 3 {
		n := 3
		if prefixFoldLen(buf, i+3, stop, "inity") == 5 {
			n = 8
		}
		sign := 1
		if rec.Neg {
			sign = -1
		}
		return Result[T]{Value: T(math.Inf(sign)), N: i + n - start}, true
	}
	return Result[T]{}, false
}
