//go:build unix

package server

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoName returns the symbolic name of errno, such as "EINVAL"
func errnoName(errno syscall.Errno) string {
	return unix.ErrnoName(errno)
}
