//go:build unix

package health

import (
	"errors"
	"syscall"
)

// processExists probes the process table with signal 0. EPERM means the
// process exists but belongs to another user.
func processExists(pid int) bool {
	err := syscall.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}
