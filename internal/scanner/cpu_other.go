//go:build !amd64 && !arm64

package scanner

// Stay on the byte-at-a-time loop where unaligned 8-byte loads may be slow.
const useChunks = false
