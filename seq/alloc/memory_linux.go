package alloc

import (
	"math"

	"golang.org/x/sys/unix"
)

// physicalMemory returns total RAM in bytes, or 0 if it cannot be read.
func physicalMemory() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(info.Totalram)
	if total > math.MaxInt64/unit {
		return math.MaxInt64
	}
	return int64(total * unit)
}
