//go:build amd64

package scanner

import "golang.org/x/sys/cpu"

// Wide unaligned loads are cheap on any SSE4.2-capable part, so the chunked
// digit scan is worth taking.
var useChunks = cpu.X86.HasSSE42 || cpu.X86.HasAVX2
