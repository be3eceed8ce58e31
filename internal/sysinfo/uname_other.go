//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package sysinfo

func uname() (sysname, release string, err error) {
	return "", "", ErrUnavailable
}
