// Package client is the thin HTTP client the CLI uses to talk to sandboxd
// over its Unix socket.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ErrDaemonNotRunning is returned when the daemon socket is absent or
// refuses connections.
var ErrDaemonNotRunning = errors.New("daemon not running")

const defaultTimeout = 5 * time.Second

// Client talks to the daemon over its Unix socket. Every request is bounded
// by the configured timeout; a slow or wedged daemon produces an error, not
// a hung caller.
type Client struct {
	socketPath string
	httpc      *http.Client
}

// New creates a client for the daemon at socketPath. A zero timeout uses
// the default.
func New(socketPath string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		socketPath: socketPath,
		httpc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, "unix", socketPath)
				},
			},
		},
	}
}

// IsRunning reports whether a daemon answers on the socket. It never
// returns an error; an absent or unresponsive daemon is simply false.
func (c *Client) IsRunning() bool {
	resp, err := c.httpc.Get("http://sandboxd/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

type StatusResponse struct {
	PID        int    `json:"pid"`
	SocketPath string `json:"socket_path"`
	Uptime     string `json:"uptime"`
	Workspaces int    `json:"workspaces"`
	Healthy    bool   `json:"healthy"`
}

type CheckStatus struct {
	Healthy    bool   `json:"healthy"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type HealthResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckStatus `json:"checks"`
}

type WorkspaceState struct {
	ID             string `json:"id"`
	Path           string `json:"path"`
	RegisteredAt   string `json:"registered_at"`
	LastActivityAt string `json:"last_activity_at"`
}

// Status fetches the daemon process summary.
func (c *Client) Status() (*StatusResponse, error) {
	var out StatusResponse
	if err := c.get("/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health runs the daemon's checks and returns the results. An unhealthy
// daemon is a valid response, not an error.
func (c *Client) Health() (*HealthResponse, error) {
	resp, err := c.httpc.Get("http://sandboxd/health")
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()
	var out HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &out, nil
}

// RegisterWorkspace registers or re-registers a workspace.
func (c *Client) RegisterWorkspace(id, path string) error {
	return c.post("/workspace/register", map[string]string{"id": id, "path": path}, nil)
}

// UnregisterWorkspace removes a workspace. Unknown ids succeed.
func (c *Client) UnregisterWorkspace(id string) error {
	return c.post("/workspace/unregister", map[string]string{"id": id}, nil)
}

// Activity pings the workspace's last-activity timestamp.
func (c *Client) Activity(id string) error {
	return c.post("/workspace/activity", map[string]string{"id": id}, nil)
}

// GetWorkspaceState fetches one workspace's state.
func (c *Client) GetWorkspaceState(id string) (*WorkspaceState, error) {
	var out WorkspaceState
	if err := c.get("/workspace/state?id="+url.QueryEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkspaces fetches all registered workspaces.
func (c *Client) ListWorkspaces() ([]WorkspaceState, error) {
	var out struct {
		Workspaces []WorkspaceState `json:"workspaces"`
	}
	if err := c.get("/workspace/list", &out); err != nil {
		return nil, err
	}
	return out.Workspaces, nil
}

// SyncWait blocks until the workspace is registered or the server-side
// timeout elapses.
func (c *Client) SyncWait(id string, timeout time.Duration) error {
	path := "/sync/wait?id=" + url.QueryEscape(id)
	if timeout > 0 {
		path += "&timeout=" + url.QueryEscape(timeout.String())
	}
	return c.get(path, nil)
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.httpc.Get("http://sandboxd" + path)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func (c *Client) post(path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}
	resp, err := c.httpc.Post("http://sandboxd"+path, "application/json", reqBody)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func parseResponse(resp *http.Response, out interface{}) error {
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var errResp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		json.Unmarshal(b, &errResp)
		if errResp.Code == "" {
			return fmt.Errorf("daemon returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("%s: %s", errResp.Code, errResp.Message)
	}
	if out != nil {
		return json.Unmarshal(b, out)
	}
	return nil
}

// transportError folds socket-level failures into ErrDaemonNotRunning so
// callers can tell "no daemon" apart from API errors.
func transportError(err error) error {
	return fmt.Errorf("%w: %v", ErrDaemonNotRunning, err)
}
