package scanner

import "encoding/binary"

// SWAR constants for classifying and converting 8 ASCII digits at a time.
// A chunk is all digits when every high nibble is 3 and stays 3 after adding
// 6 to every byte (0x39 '9' + 6 = 0x3f, 0x3a ':' + 6 = 0x40).
const (
	nibbleHi  = 0xf0f0f0f0f0f0f0f0
	allZeros  = 0x3030303030303030
	digitCeil = 0x0606060606060606
)

func isDigitChunk(v uint64) bool {
	return v&nibbleHi == allZeros && (v+digitCeil)&nibbleHi == allZeros
}

// chunkValue converts a little-endian load of 8 ASCII digits to their numeric
// value. Pairwise multiply-and-shift folds bytes into pairs, pairs into
// quads, quads into the full 8-digit value.
func chunkValue(v uint64) uint64 {
	v -= allZeros
	v = (v * (1 + (10 << 8))) >> 8
	v = (v & 0x00ff00ff00ff00ff) * (1 + (100 << 16)) >> 16
	v = (v & 0x0000ffff0000ffff) * (1 + (10000 << 32)) >> 32
	return v & 0xffffffff
}

// scanDigits consumes the digit run starting at i, accumulating into mant
// (modulo 2^64). It returns the index past the run, the accumulator, and the
// number of digits consumed.
func scanDigits(buf []byte, i, stop int, mant uint64) (int, uint64, int) {
	n := 0
	if useChunks {
		for stop-i >= 8 {
			v := binary.LittleEndian.Uint64(buf[i:])
			if !isDigitChunk(v) {
				break
			}
			mant = mant*100000000 + chunkValue(v)
			i += 8
			n += 8
		}
	}
	for i < stop {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		mant = mant*10 + uint64(c-'0')
		i++
		n++
	}
	return i, mant, n
}
