package alloc

import (
	"math"

	"golang.org/x/sys/unix"
)

// physicalMemory returns total RAM in bytes, or 0 if it cannot be read.
func physicalMemory() int64 {
	n, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0
	}
	return int64(min(n, math.MaxInt64))
}
