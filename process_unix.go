//go:build unix

package monitoring

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

func readResourceUsage() ([]Attribute, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return nil, fmt.Errorf("getrusage: %w", err)
	}
	return []Attribute{
		Float("userCPUSeconds", timevalDuration(ru.Utime).Seconds()),
		Float("systemCPUSeconds", timevalDuration(ru.Stime).Seconds()),
		Int("maxRSSBytes", maxRSSBytes(int64(ru.Maxrss))),
		Int("minorPageFaults", int64(ru.Minflt)),
		Int("majorPageFaults", int64(ru.Majflt)),
	}, nil
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Nano())
}

// maxRSSBytes normalizes ru_maxrss, which is kilobytes on Linux and bytes on darwin.
func maxRSSBytes(v int64) int64 {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return v
	}
	return v * 1024
}
