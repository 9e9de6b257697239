package health

import (
	"errors"
	"sync"
)

// CompositeChecker aggregates sub-checkers. All sub-checkers always run,
// even after one fails, so each keeps a current cached result for
// diagnostics; the composite reports the joined failures.
type CompositeChecker struct {
	name string
	subs []Checker

	mu      sync.Mutex
	healthy bool
}

func NewCompositeChecker(name string, subs ...Checker) *CompositeChecker {
	return &CompositeChecker{name: name, subs: subs}
}

func (c *CompositeChecker) Name() string { return c.name }

func (c *CompositeChecker) Check() error {
	var errs []error
	for _, sub := range c.subs {
		if err := sub.Check(); err != nil {
			errs = append(errs, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = len(errs) == 0
	return errors.Join(errs...)
}

func (c *CompositeChecker) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}
