//go:build !unix

package server

import "syscall"

// errnoName has no symbol table off unix; errorCode falls back to the number
func errnoName(syscall.Errno) string {
	return ""
}
