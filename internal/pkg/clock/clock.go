// Package clock is the single source of "now" for deadlines, expiry and
// capacity, so tests can pin time instead of sleeping.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewRealClock reads wall time in UTC to match timestamptz values read back from Postgres.
func NewRealClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

// MockClock only moves when told to. Safe for concurrent use by workers under test.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
