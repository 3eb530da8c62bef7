package application

import (
	"fmt"
	"sync"
	"time"
)

// referenceTime is a fixed instant shared by tests that only need a stable
// timestamp.
var referenceTime = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

// manualClock is a hand-advanced time source. A zero start falls back to
// referenceTime.
type manualClock struct {
	mu      sync.Mutex
	current time.Time
}

func newManualClock(start time.Time) *manualClock {
	if start.IsZero() {
		start = referenceTime
	}
	return &manualClock{current: start}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *manualClock) NowFunc() func() time.Time {
	return c.Now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// testIDSequence yields "<prefix>-1", "<prefix>-2", ...
type testIDSequence struct {
	mu      sync.Mutex
	prefix  string
	counter uint64
}

func newTestIDSequence(prefix string) *testIDSequence {
	return &testIDSequence{prefix: prefix}
}

func (s *testIDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("%s-%d", s.prefix, s.counter)
}

func (s *testIDSequence) NextFunc() func() string {
	return s.Next
}
