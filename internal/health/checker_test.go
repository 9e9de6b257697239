package health

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePIDFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pid")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessCheckerHealthy(t *testing.T) {
	// Our own PID always exists.
	path := writePIDFile(t, fmt.Sprintf("  %d\n", os.Getpid()))
	c := NewProcessChecker("self", path)

	if err := c.Check(); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	if !c.IsHealthy() {
		t.Error("expected IsHealthy true after successful check")
	}
	if c.PID() != os.Getpid() {
		t.Errorf("expected PID %d, got %d", os.Getpid(), c.PID())
	}
}

func TestProcessCheckerInvalidPID(t *testing.T) {
	cases := map[string]string{
		"missing":      "",
		"empty":        " \n ",
		"non-numeric":  "not-a-pid",
		"zero":         "0",
		"negative":     "-42",
		"trailing-gar": "123abc",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			var path string
			if name == "missing" {
				path = filepath.Join(t.TempDir(), "absent.pid")
			} else {
				path = writePIDFile(t, content)
			}
			c := NewProcessChecker(name, path)
			err := c.Check()
			if !errors.Is(err, ErrInvalidPID) {
				t.Errorf("expected ErrInvalidPID, got %v", err)
			}
			if c.IsHealthy() {
				t.Error("expected IsHealthy false")
			}
		})
	}
}

func TestProcessCheckerStalePID(t *testing.T) {
	path := writePIDFile(t, "999999999")
	c := NewProcessChecker("stale", path)

	err := c.Check()
	if !errors.Is(err, ErrProcessNotFound) {
		t.Errorf("expected ErrProcessNotFound, got %v", err)
	}
	if c.PID() != 999999999 {
		t.Errorf("expected parsed PID to be exposed, got %d", c.PID())
	}
}

func TestPortCheckerHealthy(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	c := NewPortChecker("open", "127.0.0.1", port, 0)
	if err := c.Check(); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	if !c.IsHealthy() {
		t.Error("expected IsHealthy true")
	}
}

func TestPortCheckerClosedPort(t *testing.T) {
	// Grab a free port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	c := NewPortChecker("closed", "127.0.0.1", port, 0)
	if err := c.Check(); err == nil {
		t.Fatal("expected closed port to be unhealthy")
	}
	if c.IsHealthy() {
		t.Error("expected IsHealthy false")
	}
}

func TestCompositeChecker(t *testing.T) {
	a := &fakeChecker{name: "a"}
	b := &fakeChecker{name: "b", err: errors.New("b is down")}

	c := NewCompositeChecker("combo", a, b)
	err := c.Check()
	if err == nil {
		t.Fatal("expected composite with failing sub-checker to fail")
	}
	if !strings.Contains(err.Error(), "b is down") {
		t.Errorf("expected error to surface b's failure, got %v", err)
	}
	if c.IsHealthy() {
		t.Error("expected IsHealthy false")
	}
	// All sub-checkers ran despite b failing.
	if !a.IsHealthy() {
		t.Error("expected a to have run and be healthy")
	}

	b.err = nil
	if err := c.Check(); err != nil {
		t.Fatalf("expected healthy composite, got %v", err)
	}
	if !c.IsHealthy() {
		t.Error("expected IsHealthy true")
	}
}

func TestCompositeAllSubCheckersRun(t *testing.T) {
	first := &fakeChecker{name: "first", err: errors.New("first fails")}
	second := &fakeChecker{name: "second"}
	third := &fakeChecker{name: "third"}

	c := NewCompositeChecker("combo", first, second, third)
	c.Check()

	if !second.IsHealthy() || !third.IsHealthy() {
		t.Error("expected all sub-checkers to run even after a failure")
	}
}
