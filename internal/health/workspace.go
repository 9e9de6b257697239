package health

import (
	"fmt"
	"sync"

	"github.com/lzjever/sandboxd/internal/registry"
)

// WorkspaceChecker reports healthy iff a workspace id is currently present
// in the registry.
type WorkspaceChecker struct {
	name        string
	workspaceID string
	registry    *registry.Registry

	mu      sync.Mutex
	healthy bool
}

func NewWorkspaceChecker(name, workspaceID string, reg *registry.Registry) *WorkspaceChecker {
	return &WorkspaceChecker{name: name, workspaceID: workspaceID, registry: reg}
}

func (c *WorkspaceChecker) Name() string { return c.name }

func (c *WorkspaceChecker) Check() error {
	_, ok := c.registry.Get(c.workspaceID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = ok
	if !ok {
		return fmt.Errorf("workspace %q not found", c.workspaceID)
	}
	return nil
}

func (c *WorkspaceChecker) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}
