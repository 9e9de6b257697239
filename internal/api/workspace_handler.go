package api

import (
	"net/http"
	"time"

	"github.com/lzjever/sandboxd/internal/core"
)

type RegisterRequest struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type UnregisterRequest struct {
	ID string `json:"id"`
}

type ActivityRequest struct {
	ID string `json:"id"`
}

type WorkspaceResponse struct {
	ID             string `json:"id"`
	Path           string `json:"path"`
	RegisteredAt   string `json:"registered_at"`
	LastActivityAt string `json:"last_activity_at"`
}

// RegisterWorkspace upserts a workspace. Registration is last-write-wins;
// ids and paths are accepted verbatim, including empty strings.
func (a *API) RegisterWorkspace(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	a.registry.Register(req.ID, req.Path)
	WriteJSON(w, http.StatusOK, map[string]interface{}{})
}

// UnregisterWorkspace removes a workspace. Unknown ids still succeed,
// consistent with registry idempotence.
func (a *API) UnregisterWorkspace(w http.ResponseWriter, r *http.Request) {
	var req UnregisterRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	a.registry.Unregister(req.ID)
	WriteJSON(w, http.StatusOK, map[string]interface{}{})
}

// WorkspaceActivity updates the last-activity timestamp for a known
// workspace.
func (a *API) WorkspaceActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	if !a.registry.Touch(req.ID) {
		WriteError(w, core.NewAppError(core.ErrNotFound, "workspace not found"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{})
}

// ListWorkspaces returns all registered workspaces.
func (a *API) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces := a.registry.List()
	resp := make([]WorkspaceResponse, len(workspaces))
	for i, ws := range workspaces {
		resp[i] = workspaceToResponse(ws)
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"workspaces": resp,
	})
}

// WorkspaceState returns one workspace's state. The first id query
// parameter wins when several are supplied.
func (a *API) WorkspaceState(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	ws, ok := a.registry.Get(id)
	if !ok {
		WriteError(w, core.NewAppError(core.ErrNotFound, "workspace not found"))
		return
	}
	WriteJSON(w, http.StatusOK, workspaceToResponse(ws))
}

func workspaceToResponse(ws core.WorkspaceState) WorkspaceResponse {
	return WorkspaceResponse{
		ID:             ws.ID,
		Path:           ws.Path,
		RegisteredAt:   ws.RegisteredAt.UTC().Format(time.RFC3339Nano),
		LastActivityAt: ws.LastActivityAt.UTC().Format(time.RFC3339Nano),
	}
}
