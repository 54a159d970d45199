package fastreal

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/zeebo/xxh3"
)

// buildCorpus generates a deterministic grid of decimal tokens spanning both
// sides of every fast-path bound: short and long mantissas, fractions, and
// exponents inside and outside [-22, 22].
func buildCorpus() []string {
	mantissas := []uint64{
		0, 1, 7, 42, 999, 123456, 9999999, 123456789,
		9007199254740991, 9007199254740993, 18446744073709551615,
	}
	exponents := []int{-30, -23, -22, -10, -3, -1, 0, 1, 3, 10, 22, 23, 30}

	var corpus []string
	for _, m := range mantissas {
		for _, e := range exponents {
			corpus = append(corpus,
				fmt.Sprintf("%de%d", m, e),
				fmt.Sprintf("-%de%d", m, e),
				fmt.Sprintf("%d.%de%d", m, m, e),
			)
		}
		corpus = append(corpus, fmt.Sprintf("%d", m), fmt.Sprintf("0.%d", m))
	}
	return corpus
}

// The whole corpus, hashed as bit patterns, must digest identically whether
// parsed here or by the general converter. A digest mismatch pins down a
// single-bit rounding divergence that a spot check could miss.
func TestCorpusDigestMatchesStrconv(t *testing.T) {
	corpus := buildCorpus()

	var ours, theirs []byte
	fast, slow := 0, 0
	var word [8]byte
	for _, input := range corpus {
		r, ok := ParseString(input)
		if !ok {
			t.Fatalf("ParseString(%q) found no token", input)
		}
		if r.N != len(input) {
			t.Fatalf("ParseString(%q) consumed %d of %d bytes", input, r.N, len(input))
		}
		if r.Fast {
			fast++
		} else {
			slow++
		}

		want, err := strconv.ParseFloat(input, 64)
		if err != nil && !math.IsInf(want, 0) {
			t.Fatalf("strconv rejected %q: %v", input, err)
		}

		binary.LittleEndian.PutUint64(word[:], math.Float64bits(r.Value))
		ours = append(ours, word[:]...)
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(want))
		theirs = append(theirs, word[:]...)
	}

	if got, want := xxh3.Hash(ours), xxh3.Hash(theirs); got != want {
		t.Errorf("corpus digest mismatch: %016x vs %016x over %d tokens", got, want, len(corpus))
		// Narrow it down for the log.
		for i := range corpus {
			a := binary.LittleEndian.Uint64(ours[i*8:])
			b := binary.LittleEndian.Uint64(theirs[i*8:])
			if a != b {
				t.Errorf("first divergence at %q: %016x vs %016x", corpus[i], a, b)
				break
			}
		}
	}

	// The grid must genuinely exercise both paths.
	if fast == 0 || slow == 0 {
		t.Errorf("corpus exercised fast=%d slow=%d parses; want both nonzero", fast, slow)
	}
}

func TestCorpusFloat32DigestMatchesStrconv(t *testing.T) {
	corpus := buildCorpus()

	var ours, theirs []byte
	var word [4]byte
	for _, input := range corpus {
		r, ok := ParseString32(input)
		if !ok {
			t.Fatalf("ParseString32(%q) found no token", input)
		}
		want, err := strconv.ParseFloat(input, 32)
		if err != nil && !math.IsInf(want, 0) {
			t.Fatalf("strconv rejected %q: %v", input, err)
		}

		binary.LittleEndian.PutUint32(word[:], math.Float32bits(r.Value))
		ours = append(ours, word[:]...)
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(float32(want)))
		theirs = append(theirs, word[:]...)
	}

	if got, want := xxh3.Hash(ours), xxh3.Hash(theirs); got != want {
		t.Errorf("float32 corpus digest mismatch: %016x vs %016x", got, want)
	}
}
