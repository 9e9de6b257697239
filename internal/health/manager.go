package health

import (
	"sync"
	"time"

	"github.com/lzjever/sandboxd/internal/observability"
)

// Status is the recorded outcome of one checker's most recent run.
type Status struct {
	Name     string        `json:"name"`
	Healthy  bool          `json:"healthy"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"-"`
}

// Manager owns a named set of checkers and the status of their last run.
// Registration is last-wins per name. RunChecks may race with Unregister;
// a checker removed mid-run may or may not appear in the resulting status
// set, but the status map is never corrupted.
type Manager struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	statuses map[string]Status
}

func NewManager() *Manager {
	return &Manager{
		checkers: make(map[string]Checker),
		statuses: make(map[string]Status),
	}
}

// Register inserts a checker, replacing any existing checker with the same
// name.
func (m *Manager) Register(c Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers[c.Name()] = c
}

// Unregister removes a checker and its recorded status. Unknown names are
// no-ops.
func (m *Manager) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.checkers, name)
	delete(m.statuses, name)
}

// RunChecks runs every currently-registered checker and records its status.
// An individual checker failing never aborts the run of the others; a slow
// checker inflates the total wall-clock time and its own recorded duration.
func (m *Manager) RunChecks() {
	m.mu.RLock()
	snapshot := make([]Checker, 0, len(m.checkers))
	for _, c := range m.checkers {
		snapshot = append(snapshot, c)
	}
	m.mu.RUnlock()

	for _, c := range snapshot {
		start := time.Now()
		err := c.Check()
		elapsed := time.Since(start)

		st := Status{Name: c.Name(), Healthy: err == nil, Duration: elapsed}
		result := "pass"
		if err != nil {
			st.Message = err.Error()
			result = "fail"
		}
		observability.HealthChecksTotal.WithLabelValues(c.Name(), result).Inc()
		observability.HealthCheckDuration.WithLabelValues(c.Name()).Observe(elapsed.Seconds())

		m.mu.Lock()
		// Drop the result if the checker was unregistered mid-run.
		if _, ok := m.checkers[c.Name()]; ok {
			m.statuses[c.Name()] = st
		}
		m.mu.Unlock()
	}
}

// IsAllHealthy reports whether every recorded status is healthy. A manager
// with no checkers is vacuously healthy.
func (m *Manager) IsAllHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, st := range m.statuses {
		if !st.Healthy {
			return false
		}
	}
	return true
}

// Status returns the recorded status for name.
func (m *Manager) Status(name string) (Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.statuses[name]
	return st, ok
}

// AllStatuses returns a copy of the recorded statuses keyed by name.
func (m *Manager) AllStatuses() map[string]Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Status, len(m.statuses))
	for name, st := range m.statuses {
		out[name] = st
	}
	return out
}
