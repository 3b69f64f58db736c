//go:build !unix

package main

import "errors"

// execReplace is unavailable without execve; the caller falls back to
// running the tool as a plain child process.
func execReplace(path string, argv []string) error {
	return errors.New("exec is not supported on this platform")
}

const canExecReplace = false
