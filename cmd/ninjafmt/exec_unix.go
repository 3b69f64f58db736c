//go:build unix

package main

import (
	"os"
	"syscall"
)

// execReplace replaces the current process image with the wrapped tool,
// argument vector unchanged. Only returns on failure.
func execReplace(path string, argv []string) error {
	return syscall.Exec(path, argv, os.Environ())
}

// canExecReplace reports whether the bypass fast path can replace the
// process image on this platform.
const canExecReplace = true
