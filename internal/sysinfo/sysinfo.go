// Package sysinfo gathers the handful of host facts the pyramid displays.
// Every metric is optional: one that cannot be read is left nil and its bar
// is simply not drawn.
package sysinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pyrafetch/pyrafetch/internal/utils"
)

var ErrUnavailable = errors.New("sysinfo: metric unavailable on this platform")

// Memory sizes in KiB, as the kernel reports them
type Memory struct {
	TotalKB uint64
	AvailKB uint64
}

// AvailFraction returns available/total, or 0 for an empty total
func (m Memory) AvailFraction() float64 {
	if m.TotalKB == 0 {
		return 0
	}
	return float64(m.AvailKB) / float64(m.TotalKB)
}

type OSInfo struct {
	Type     string // kernel name, e.g. "Linux"
	Release  string // kernel release
	Hostname string
}

type Snapshot struct {
	CPUs   int
	Memory *Memory
	OS     *OSInfo
}

// Collect reads all metrics, logging the ones that fail
func Collect() Snapshot {
	snap := Snapshot{CPUs: runtime.NumCPU()}

	if mem, err := readMemory(); err != nil {
		utils.Debug("sysinfo: memory: %v", err)
	} else {
		snap.Memory = &mem
	}

	if info, err := readOS(); err != nil {
		utils.Debug("sysinfo: os: %v", err)
	} else {
		snap.OS = &info
	}

	return snap
}

func readOS() (OSInfo, error) {
	typ, release, err := uname()
	if err != nil {
		return OSInfo{}, err
	}
	host, err := os.Hostname()
	if err != nil {
		return OSInfo{}, fmt.Errorf("hostname: %w", err)
	}
	return OSInfo{Type: typ, Release: release, Hostname: host}, nil
}

// ParseMeminfo reads /proc/meminfo formatted data. Without a MemAvailable
// line (kernels before 3.14) availability is estimated as
// MemFree + Buffers + Cached.
func ParseMeminfo(r io.Reader) (Memory, error) {
	fields := make(map[string]uint64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			continue
		}
		v, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		fields[strings.TrimSpace(key)] = v
	}
	if err := scanner.Err(); err != nil {
		return Memory{}, err
	}

	total, ok := fields["MemTotal"]
	if !ok || total == 0 {
		return Memory{}, errors.New("meminfo: missing MemTotal")
	}
	avail, ok := fields["MemAvailable"]
	if !ok {
		avail = fields["MemFree"] + fields["Buffers"] + fields["Cached"]
	}
	return Memory{TotalKB: total, AvailKB: min(avail, total)}, nil
}
