package health

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"
)

const defaultDialTimeout = 2 * time.Second

// PortChecker probes whether something is listening on a TCP port.
type PortChecker struct {
	name    string
	host    string
	port    int
	timeout time.Duration

	mu      sync.Mutex
	healthy bool
}

// NewPortChecker creates a TCP port checker. A zero timeout uses the
// default dial timeout.
func NewPortChecker(name, host string, port int, timeout time.Duration) *PortChecker {
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	return &PortChecker{name: name, host: host, port: port, timeout: timeout}
}

func (c *PortChecker) Name() string { return c.name }

func (c *PortChecker) Check() error {
	addr := net.JoinHostPort(c.host, strconv.Itoa(c.port))
	conn, err := net.DialTimeout("tcp", addr, c.timeout)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.healthy = false
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	conn.Close()
	c.healthy = true
	return nil
}

func (c *PortChecker) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}
