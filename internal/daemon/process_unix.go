//go:build unix

package daemon

import (
	"errors"
	"syscall"
)

// processExists probes the process table with signal 0.
func processExists(pid int) bool {
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}
