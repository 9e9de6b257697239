// Package registry tracks workspaces registered with the daemon. It is the
// only shared mutable workspace state in the process; every handler and
// checker goes through it.
package registry

import (
	"context"
	"sync"
	"time"

	"github.com/lzjever/sandboxd/internal/core"
	"github.com/lzjever/sandboxd/internal/observability"
)

// Registry is an in-memory workspace table keyed by id. All methods are safe
// for unbounded concurrent use. Registration is last-write-wins per id.
type Registry struct {
	mu         sync.RWMutex
	workspaces map[string]core.WorkspaceState
}

func New() *Registry {
	return &Registry{
		workspaces: make(map[string]core.WorkspaceState),
	}
}

// Register upserts a workspace. IDs and paths are stored verbatim; empty
// strings are accepted. Re-registering an existing id overwrites its path
// and timestamps without changing the count.
func (r *Registry) Register(id, path string) {
	now := time.Now()
	r.mu.Lock()
	r.workspaces[id] = core.WorkspaceState{
		ID:             id,
		Path:           path,
		RegisteredAt:   now,
		LastActivityAt: now,
	}
	n := len(r.workspaces)
	r.mu.Unlock()
	observability.WorkspacesRegistered.Set(float64(n))
}

// Unregister removes a workspace if present. Unknown and already-removed ids
// are no-ops.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.workspaces, id)
	n := len(r.workspaces)
	r.mu.Unlock()
	observability.WorkspacesRegistered.Set(float64(n))
}

// Get returns the state for id, or false when it is not registered.
func (r *Registry) Get(id string) (core.WorkspaceState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[id]
	return ws, ok
}

// Touch updates the last-activity timestamp. Returns false when the id is
// not registered.
func (r *Registry) Touch(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.workspaces[id]
	if !ok {
		return false
	}
	ws.LastActivityAt = time.Now()
	r.workspaces[id] = ws
	return true
}

// List returns all registered workspaces in no particular order.
func (r *Registry) List() []core.WorkspaceState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.WorkspaceState, 0, len(r.workspaces))
	for _, ws := range r.workspaces {
		out = append(out, ws)
	}
	return out
}

// Count returns the number of unique registered ids.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}

// waitPollInterval is how often Wait re-checks the table.
const waitPollInterval = 25 * time.Millisecond

// Wait blocks until id is registered or ctx is done. It backs the daemon's
// /sync/wait endpoint, so it must never outlive the context deadline.
func (r *Registry) Wait(ctx context.Context, id string) error {
	if _, ok := r.Get(id); ok {
		return nil
	}
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, ok := r.Get(id); ok {
				return nil
			}
		}
	}
}
