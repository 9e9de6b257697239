// Package daemon owns the sandboxd process lifecycle: the Unix socket
// listener, the PID file, the periodic health loop, and shutdown ordering.
package daemon

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lzjever/sandboxd/internal/api"
	"github.com/lzjever/sandboxd/internal/health"
	"github.com/lzjever/sandboxd/internal/observability"
	"github.com/lzjever/sandboxd/internal/registry"
)

// State is the daemon lifecycle state.
type State string

const (
	StateCreated  State = "created"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
	StateStopped  State = "stopped"
)

// Daemon supervises the HTTP/socket server, the workspace registry, and the
// health manager. Start and Stop sequence the on-disk lifecycle markers: the
// socket file and PID file exist exactly while the daemon is running.
type Daemon struct {
	cfg      Config
	log      *zap.Logger
	registry *registry.Registry
	health   *health.Manager

	mu       sync.Mutex
	state    State
	listener net.Listener
	srv      *http.Server

	stopOnce  sync.Once
	loopStop  chan struct{}
	loopDone  chan struct{}
	serveDone chan struct{}
}

func New(cfg Config, log *zap.Logger) *Daemon {
	return &Daemon{
		cfg:       cfg,
		log:       log,
		registry:  registry.New(),
		health:    health.NewManager(),
		state:     StateCreated,
		loopStop:  make(chan struct{}),
		loopDone:  make(chan struct{}),
		serveDone: make(chan struct{}),
	}
}

// Registry returns the daemon's workspace registry.
func (d *Daemon) Registry() *registry.Registry { return d.registry }

// Health returns the daemon's health manager.
func (d *Daemon) Health() *health.Manager { return d.health }

// State returns the current lifecycle state.
func (d *Daemon) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start binds the Unix socket, writes the PID file, and begins serving.
// A socket directory that cannot be created or bound is a fatal startup
// error; it is returned, not retried.
func (d *Daemon) Start() error {
	d.mu.Lock()
	if d.state != StateCreated {
		d.mu.Unlock()
		return fmt.Errorf("daemon already started (state %s)", d.state)
	}
	d.state = StateStarting
	d.mu.Unlock()

	if err := d.bind(); err != nil {
		d.mu.Lock()
		d.state = StateStopped
		d.mu.Unlock()
		return err
	}

	apiHandler := api.NewAPI(d.registry, d.health, d.cfg.SocketPath, d.log)
	srv := &http.Server{
		Handler:      apiHandler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	d.mu.Lock()
	d.srv = srv
	d.state = StateRunning
	d.mu.Unlock()

	go func() {
		defer close(d.serveDone)
		if err := srv.Serve(d.listener); err != nil && err != http.ErrServerClosed {
			d.log.Error("serve failed", zap.Error(err))
		}
	}()

	go d.checkLoop()

	d.log.Info("daemon started",
		zap.String("socket", d.cfg.SocketPath),
		zap.String("pid_file", d.cfg.PIDFile),
		zap.Int("pid", os.Getpid()),
	)
	return nil
}

// bind prepares the socket path and PID file. Any regular file left at the
// socket path by an unclean shutdown is removed before binding.
func (d *Daemon) bind() error {
	if err := removeStaleSocket(d.cfg.SocketPath); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(d.cfg.SocketPath), 0o755); err != nil {
		return fmt.Errorf("create socket directory: %w", err)
	}

	ln, err := net.Listen("unix", d.cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("bind socket %s: %w", d.cfg.SocketPath, err)
	}
	if err := os.Chmod(d.cfg.SocketPath, 0o600); err != nil {
		ln.Close()
		os.Remove(d.cfg.SocketPath)
		return fmt.Errorf("chmod socket: %w", err)
	}

	if err := WritePIDFile(d.cfg.PIDFile); err != nil {
		ln.Close()
		os.Remove(d.cfg.SocketPath)
		return fmt.Errorf("write pid file: %w", err)
	}

	d.mu.Lock()
	d.listener = ln
	d.mu.Unlock()
	return nil
}

// Stop closes the listener, drains in-flight requests, then removes the
// socket and PID files. It is safe to call concurrently and repeatedly;
// only the first call does any work.
func (d *Daemon) Stop() error {
	var stopErr error
	d.stopOnce.Do(func() {
		d.mu.Lock()
		if d.state != StateRunning {
			d.mu.Unlock()
			return
		}
		d.state = StateStopping
		srv := d.srv
		d.mu.Unlock()

		close(d.loopStop)
		<-d.loopDone

		if srv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), d.cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				stopErr = fmt.Errorf("shutdown: %w", err)
			}
			<-d.serveDone
		}

		if err := os.Remove(d.cfg.SocketPath); err != nil && !os.IsNotExist(err) {
			d.log.Warn("remove socket failed", zap.Error(err))
		}
		if err := RemovePIDFile(d.cfg.PIDFile); err != nil {
			d.log.Warn("remove pid file failed", zap.Error(err))
		}

		d.mu.Lock()
		d.state = StateStopped
		d.mu.Unlock()
		d.log.Info("daemon stopped")
	})
	return stopErr
}

// checkLoop runs the health manager on the configured interval until Stop.
func (d *Daemon) checkLoop() {
	defer close(d.loopDone)
	if d.cfg.CheckInterval <= 0 {
		<-d.loopStop
		return
	}
	ticker := time.NewTicker(d.cfg.CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.loopStop:
			return
		case <-ticker.C:
			d.health.RunChecks()
			for name, st := range d.health.AllStatuses() {
				if !st.Healthy {
					observability.CheckLogger(d.log, name).Warn("health check failing",
						zap.String("message", st.Message))
				}
			}
		}
	}
}

// removeStaleSocket clears whatever occupies the socket path. Sockets and
// regular files alike are removed; the caller is about to bind fresh.
func removeStaleSocket(path string) error {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat socket path: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove stale socket %s: %w", path, err)
	}
	return nil
}
