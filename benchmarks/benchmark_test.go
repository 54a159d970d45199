package benchmarks

import (
	"strconv"
	"testing"

	"github.com/pangliyang/fastreal"
)

var (
	sinkF64 float64
	sinkOK  bool
)

var inputs = []struct {
	name  string
	value string
}{
	{"small_int", "7"},
	{"temperature", "-12.3"},
	{"price", "1094.99"},
	{"scientific", "6.02e23"},
	{"long_mantissa", "123456789012345678901234567890"},
	{"huge_exponent", "1e400"},
}

func BenchmarkParse(b *testing.B) {
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.value)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkF64, sinkOK = fastreal.Parse(in.value)
			}
		})
	}
}

func BenchmarkStrconvParseFloat(b *testing.B) {
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.value)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, err := strconv.ParseFloat(in.value, 64)
				sinkF64, sinkOK = v, err == nil
			}
		})
	}
}

func BenchmarkParseBytesSpan(b *testing.B) {
	line := []byte("sensor-4;21.375;ok")
	b.SetBytes(int64(len(line)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, ok := fastreal.ParseSpan(line, 9, len(line))
		sinkF64, sinkOK = r.Value, ok
	}
}
