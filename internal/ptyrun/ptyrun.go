// Package ptyrun spawns the wrapped build tool under a pseudo-terminal
// so it keeps its native line-buffering and color decisions, and exposes
// a narrow session handle for reading, signal forwarding, and exit
// status collection.
package ptyrun

import "errors"

// ErrUnsupported is returned by Start on platforms without
// pseudo-terminal support.
var ErrUnsupported = errors.New("pseudo-terminal sessions are not supported on this platform")
