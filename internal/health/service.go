package health

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lzjever/sandboxd/internal/registry"
)

const (
	serviceProbeAttempts = 3
	serviceProbeBackoff  = 500 * time.Millisecond
	serviceProbeTimeout  = 2 * time.Second
)

// ServiceChecker probes an HTTP service running inside a workspace. The
// workspace must be registered before the service can be considered at all;
// an unregistered workspace is its own failure mode, distinct from a
// connection failure.
type ServiceChecker struct {
	name        string
	workspaceID string
	service     string
	port        int
	path        string
	registry    *registry.Registry
	client      *http.Client

	mu      sync.Mutex
	healthy bool
	lastErr string
}

// NewServiceChecker creates an HTTP service checker. path defaults to "/".
func NewServiceChecker(name, workspaceID, service string, port int, path string, reg *registry.Registry) *ServiceChecker {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &ServiceChecker{
		name:        name,
		workspaceID: workspaceID,
		service:     service,
		port:        port,
		path:        path,
		registry:    reg,
		client:      &http.Client{Timeout: serviceProbeTimeout},
	}
}

func (c *ServiceChecker) Name() string { return c.name }

// Check resolves the workspace, then probes the service over HTTP. Transient
// connection failures are retried with a short backoff before the checker
// gives up.
func (c *ServiceChecker) Check() error {
	err := c.probe()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.healthy = false
		c.lastErr = err.Error()
		return err
	}
	c.healthy = true
	c.lastErr = ""
	return nil
}

func (c *ServiceChecker) probe() error {
	if _, ok := c.registry.Get(c.workspaceID); !ok {
		return fmt.Errorf("service %s: no workspace %q", c.service, c.workspaceID)
	}

	url := "http://127.0.0.1:" + strconv.Itoa(c.port) + c.path
	var lastErr error
	for attempt := 0; attempt < serviceProbeAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(serviceProbeBackoff)
		}
		resp, err := c.client.Get(url)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("service %s returned %d", c.service, resp.StatusCode)
			continue
		}
		return nil
	}
	return fmt.Errorf("service %s: connection failed: %w", c.service, lastErr)
}

func (c *ServiceChecker) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}

// LastError returns the text of the most recent probe failure, empty when
// the last probe succeeded.
func (c *ServiceChecker) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
