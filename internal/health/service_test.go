package health

import (
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/lzjever/sandboxd/internal/registry"
)

// serveOnLoopback starts an HTTP server on a random loopback port and
// returns the port.
func serveOnLoopback(t *testing.T, handler http.Handler) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	t.Cleanup(func() { srv.Close() })
	return ln.Addr().(*net.TCPAddr).Port
}

func TestWorkspaceChecker(t *testing.T) {
	reg := registry.New()
	c := NewWorkspaceChecker("ws-check", "ws-1", reg)

	err := c.Check()
	if err == nil {
		t.Fatal("expected unhealthy for unregistered workspace")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected descriptive not-found message, got %v", err)
	}
	if c.IsHealthy() {
		t.Error("expected IsHealthy false")
	}

	reg.Register("ws-1", "/tmp/ws-1")
	if err := c.Check(); err != nil {
		t.Fatalf("expected healthy after registration, got %v", err)
	}
	if !c.IsHealthy() {
		t.Error("expected IsHealthy true")
	}
}

func TestServiceCheckerNoWorkspace(t *testing.T) {
	reg := registry.New()
	c := NewServiceChecker("svc", "ws-missing", "web", 1, "", reg)

	err := c.Check()
	if err == nil {
		t.Fatal("expected unhealthy when workspace is not registered")
	}
	if !strings.Contains(err.Error(), "no workspace") {
		t.Errorf("expected workspace failure mode, got %v", err)
	}
	if c.LastError() == "" {
		t.Error("expected LastError to be populated")
	}
}

func TestServiceCheckerHealthy(t *testing.T) {
	port := serveOnLoopback(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	reg := registry.New()
	reg.Register("ws-1", "/tmp/ws-1")

	c := NewServiceChecker("svc", "ws-1", "web", port, "/healthz", reg)
	if err := c.Check(); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	if !c.IsHealthy() {
		t.Error("expected IsHealthy true")
	}
	if c.LastError() != "" {
		t.Errorf("expected LastError cleared, got %q", c.LastError())
	}
}

func TestServiceCheckerConnectionFailed(t *testing.T) {
	// Grab a free port and close it so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	reg := registry.New()
	reg.Register("ws-1", "/tmp/ws-1")

	c := NewServiceChecker("svc", "ws-1", "web", port, "", reg)
	err = c.Check()
	if err == nil {
		t.Fatal("expected unhealthy for refused connection")
	}
	if !strings.Contains(err.Error(), "connection failed") {
		t.Errorf("expected connection failure mode, got %v", err)
	}
	if c.LastError() == "" {
		t.Error("expected LastError to be populated")
	}
}
