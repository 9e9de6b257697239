package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRegisterAndGet(t *testing.T) {
	r := New()
	r.Register("ws-1", "/tmp/ws-1")

	ws, ok := r.Get("ws-1")
	if !ok {
		t.Fatal("expected workspace to be registered")
	}
	if ws.Path != "/tmp/ws-1" {
		t.Errorf("expected path /tmp/ws-1, got %s", ws.Path)
	}
	if ws.RegisteredAt.IsZero() {
		t.Error("expected RegisteredAt to be set")
	}
	if r.Count() != 1 {
		t.Errorf("expected count 1, got %d", r.Count())
	}
}

func TestRegisterLastWriteWins(t *testing.T) {
	r := New()
	r.Register("w", "/a")
	r.Register("w", "/b")

	ws, ok := r.Get("w")
	if !ok {
		t.Fatal("expected workspace to be registered")
	}
	if ws.Path != "/b" {
		t.Errorf("expected path /b, got %s", ws.Path)
	}
	if r.Count() != 1 {
		t.Errorf("expected count 1, got %d", r.Count())
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	r := New()
	r.Register("ws-1", "/tmp/ws-1")

	for i := 0; i < 3; i++ {
		r.Unregister("ws-1")
	}
	r.Unregister("never-existed")

	if r.Count() != 0 {
		t.Errorf("expected count 0, got %d", r.Count())
	}
	if _, ok := r.Get("ws-1"); ok {
		t.Error("expected workspace to be gone")
	}
}

func TestExoticIDsRoundTrip(t *testing.T) {
	cases := []struct {
		id   string
		path string
	}{
		{"ws_日本語_émoji_🚀", "/tmp/path with\ttabs\nand \"quotes\""},
		{"", ""},
		{"   ", "  /leading/space"},
		{strings.Repeat("x", 10000), "/long"},
	}
	r := New()
	for _, tc := range cases {
		r.Register(tc.id, tc.path)
		ws, ok := r.Get(tc.id)
		if !ok {
			t.Fatalf("workspace %q not found after register", tc.id)
		}
		if ws.ID != tc.id || ws.Path != tc.path {
			t.Errorf("round-trip mismatch for id %q", tc.id)
		}
	}
	if r.Count() != len(cases) {
		t.Errorf("expected count %d, got %d", len(cases), r.Count())
	}
}

func TestTouch(t *testing.T) {
	r := New()
	r.Register("ws-1", "/tmp/ws-1")
	before, _ := r.Get("ws-1")

	time.Sleep(5 * time.Millisecond)
	if !r.Touch("ws-1") {
		t.Fatal("expected Touch to succeed for known id")
	}
	after, _ := r.Get("ws-1")
	if !after.LastActivityAt.After(before.LastActivityAt) {
		t.Error("expected LastActivityAt to advance")
	}
	if !after.RegisteredAt.Equal(before.RegisteredAt) {
		t.Error("expected RegisteredAt to be unchanged")
	}

	if r.Touch("unknown") {
		t.Error("expected Touch to fail for unknown id")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r := New()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("ws-%d", i)
			r.Register(id, "/tmp/"+id)
		}(i)
	}
	wg.Wait()

	if r.Count() != n {
		t.Errorf("expected count %d, got %d", n, r.Count())
	}
	if len(r.List()) != n {
		t.Errorf("expected %d listed, got %d", n, len(r.List()))
	}
}

func TestConcurrentMixedOperations(t *testing.T) {
	r := New()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("keep-%d", i), "/keep")
		}(i)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("gone-%d", i)
			r.Register(id, "/gone")
			r.Unregister(id)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.List()
			r.Count()
		}(i)
	}
	wg.Wait()

	if r.Count() != n {
		t.Errorf("expected count %d after churn, got %d", n, r.Count())
	}
}

func TestWaitReturnsWhenRegistered(t *testing.T) {
	r := New()
	go func() {
		time.Sleep(50 * time.Millisecond)
		r.Register("ws-late", "/tmp/late")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Wait(ctx, "ws-late"); err != nil {
		t.Fatalf("expected wait to succeed, got %v", err)
	}
}

func TestWaitTimesOut(t *testing.T) {
	r := New()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Wait(ctx, "never")
	if err == nil {
		t.Fatal("expected wait to time out")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("wait overshot its deadline: %v", elapsed)
	}
}
