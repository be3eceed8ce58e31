//go:build !linux

package sysinfo

func readMemory() (Memory, error) {
	return Memory{}, ErrUnavailable
}
