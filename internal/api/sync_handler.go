package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lzjever/sandboxd/internal/core"
	"github.com/lzjever/sandboxd/internal/observability"
)

const defaultSyncWaitTimeout = 5 * time.Second

// SyncWait blocks until the workspace id is registered, up to the given
// timeout (a duration string, default 5s). The handler never outlives the
// timeout, so shutdown draining stays bounded.
func (a *API) SyncWait(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	timeout := defaultSyncWaitTimeout
	if s := r.URL.Query().Get("timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			badRequest(w, errors.New("invalid timeout"))
			return
		}
		timeout = d
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	if err := a.registry.Wait(ctx, id); err != nil {
		observability.SyncWaitTimeoutsTotal.Inc()
		WriteError(w, core.NewAppError(core.ErrTimeout, "workspace not ready within timeout"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"ready": true})
}
