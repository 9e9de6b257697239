package api

import (
	"net/http"
	"os"
	"time"

	"github.com/lzjever/sandboxd/internal/health"
)

type CheckStatus struct {
	Healthy    bool   `json:"healthy"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type HealthResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckStatus `json:"checks"`
}

// HealthHandler runs all registered health checks and reports the results.
// Probe failures are captured as unhealthy check entries, never as server
// errors.
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	a.health.RunChecks()

	statuses := a.health.AllStatuses()
	resp := HealthResponse{
		Healthy: a.health.IsAllHealthy(),
		Checks:  make(map[string]CheckStatus, len(statuses)),
	}
	for name, st := range statuses {
		resp.Checks[name] = checkToResponse(st)
	}

	status := http.StatusOK
	if !resp.Healthy {
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, resp)
}

type StatusResponse struct {
	PID        int    `json:"pid"`
	SocketPath string `json:"socket_path"`
	Uptime     string `json:"uptime"`
	Workspaces int    `json:"workspaces"`
	Healthy    bool   `json:"healthy"`
}

// StatusHandler returns a daemon process summary without re-running checks.
func (a *API) StatusHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, StatusResponse{
		PID:        os.Getpid(),
		SocketPath: a.socketPath,
		Uptime:     time.Since(a.startedAt).Round(time.Second).String(),
		Workspaces: a.registry.Count(),
		Healthy:    a.health.IsAllHealthy(),
	})
}

func checkToResponse(st health.Status) CheckStatus {
	return CheckStatus{
		Healthy:    st.Healthy,
		Message:    st.Message,
		DurationMs: st.Duration.Milliseconds(),
	}
}
