package sysinfo

import (
	"os"

	"golang.org/x/sys/unix"
)

const meminfoPath = "/proc/meminfo"

func readMemory() (Memory, error) {
	f, err := os.Open(meminfoPath)
	if err == nil {
		defer f.Close()
		if mem, err := ParseMeminfo(f); err == nil {
			return mem, nil
		}
	}

	// /proc not mounted (some containers): fall back to sysinfo(2), which
	// only knows about free memory, not reclaimable caches
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return Memory{}, err
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	return Memory{
		TotalKB: uint64(si.Totalram) * unit / 1024,
		AvailKB: (uint64(si.Freeram) + uint64(si.Bufferram)) * unit / 1024,
	}, nil
}
