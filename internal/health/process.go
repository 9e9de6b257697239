package health

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ProcessChecker probes liveness of the process recorded in a PID file.
type ProcessChecker struct {
	name    string
	pidFile string

	mu      sync.Mutex
	pid     int
	healthy bool
}

func NewProcessChecker(name, pidFile string) *ProcessChecker {
	return &ProcessChecker{name: name, pidFile: pidFile}
}

func (c *ProcessChecker) Name() string { return c.name }

// Check reads and parses the PID file, then probes the process table.
func (c *ProcessChecker) Check() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = false
	c.pid = 0

	data, err := os.ReadFile(c.pidFile)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidPID, c.pidFile, err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("%w: %s does not contain a pid", ErrInvalidPID, c.pidFile)
	}
	if pid <= 0 {
		return fmt.Errorf("%w: non-positive pid %d", ErrInvalidPID, pid)
	}
	c.pid = pid

	if !processExists(pid) {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, pid)
	}
	c.healthy = true
	return nil
}

func (c *ProcessChecker) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}

// PID returns the last PID parsed from the file, or 0 if none parsed yet.
func (c *ProcessChecker) PID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pid
}
