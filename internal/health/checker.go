// Package health implements the daemon's liveness probes: processes by PID
// file, TCP ports, workspace-local HTTP services, registry membership, and
// composites of those. A Manager owns a named set of checkers and records
// per-checker status on each run.
package health

import "errors"

// Checker probes one liveness signal. Check performs the live probe and
// caches the result; IsHealthy returns that cached result, not a fresh
// probe, so callers must Check before trusting it.
type Checker interface {
	Name() string
	Check() error
	IsHealthy() bool
}

var (
	// ErrInvalidPID indicates a missing, empty, non-numeric, or non-positive
	// PID file.
	ErrInvalidPID = errors.New("invalid pid")
	// ErrProcessNotFound indicates a well-formed PID whose process does not
	// exist.
	ErrProcessNotFound = errors.New("process not found")
)
