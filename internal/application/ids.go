package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// idSequence issues identifiers of the form <prefix>-<unix millis>. A
// monotonic guard keeps identifiers unique even when two are requested
// within the same millisecond.
type idSequence struct {
	mu     sync.Mutex
	prefix string
	now    func() time.Time
	last   int64
}

func newIDSequence(prefix string, now func() time.Time) *idSequence {
	if now == nil {
		now = time.Now
	}
	return &idSequence{prefix: prefix, now: now}
}

func (s *idSequence) next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	millis := s.now().UnixMilli()
	if millis <= s.last {
		millis = s.last + 1
	}
	s.last = millis
	return fmt.Sprintf("%s-%d", s.prefix, millis)
}

// NewPlanIDGenerator returns a generator for plan identifiers.
func NewPlanIDGenerator(now func() time.Time) func() string {
	return newIDSequence("plan", now).next
}

// NewScheduleIDGenerator returns a generator for schedule identifiers.
func NewScheduleIDGenerator(now func() time.Time) func() string {
	return newIDSequence("sched", now).next
}

// NewAnnouncementIDGenerator returns a generator for announcement
// identifiers. A random suffix is appended because announcements are minted
// in bursts alongside plan and schedule creation.
func NewAnnouncementIDGenerator(now func() time.Time) func() string {
	seq := newIDSequence("announ", now)
	return func() string {
		return seq.next() + "-" + uuid.NewString()[:5]
	}
}
