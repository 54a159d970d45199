//go:build arm64

package scanner

import "golang.org/x/sys/cpu"

var useChunks = cpu.ARM64.HasASIMD
