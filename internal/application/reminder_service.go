package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ReminderWindow is how far ahead the evaluator looks for upcoming starts.
const ReminderWindow = 24 * time.Hour

// DefaultReminderInterval is how often the background runner re-evaluates.
const DefaultReminderInterval = time.Minute

// ReminderService computes upcoming-start reminders over plans and pending
// schedules. Evaluate is a pure function of the store contents and the
// supplied instant; Run keeps a periodically refreshed snapshot.
type ReminderService struct {
	plans     PlanRepository
	schedules ScheduleRepository
	logger    *slog.Logger

	mu       sync.RWMutex
	snapshot []Reminder
}

// NewReminderService constructs a reminder service with the provided dependencies.
func NewReminderService(plans PlanRepository, schedules ScheduleRepository) *ReminderService {
	return NewReminderServiceWithLogger(plans, schedules, nil)
}

// NewReminderServiceWithLogger constructs a reminder service with a specified logger.
func NewReminderServiceWithLogger(plans PlanRepository, schedules ScheduleRepository, logger *slog.Logger) *ReminderService {
	return &ReminderService{plans: plans, schedules: schedules, logger: defaultLogger(logger)}
}

func (s *ReminderService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ReminderService", operation, attrs...)
}

// Evaluate returns reminders for every plan and pending schedule that starts
// after now and within the reminder window. Plan reminders come first, then
// schedule reminders, each group in store order.
func (s *ReminderService) Evaluate(ctx context.Context, now time.Time) (reminders []Reminder, err error) {
	if s == nil {
		err = fmt.Errorf("ReminderService is nil")
		return
	}

	logger := s.loggerWith(ctx, "Evaluate")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to evaluate reminders", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	if s.plans != nil {
		var plans []Plan
		plans, err = s.plans.ListPlans(ctx)
		if err != nil {
			err = mapPlanRepoError(err)
			return
		}
		for _, plan := range plans {
			if !withinWindow(plan.StartDate, now) {
				continue
			}
			reminders = append(reminders, Reminder{
				Kind:    "plan",
				RefID:   plan.ID,
				Message: fmt.Sprintf("Plan %q starts %s", plan.Name, formatDate(plan.StartDate)),
			})
		}
	}

	if s.schedules != nil {
		var schedules []Schedule
		schedules, err = s.schedules.ListSchedules(ctx)
		if err != nil {
			err = mapScheduleRepoError(err)
			return
		}
		for _, schedule := range schedules {
			if schedule.Status != StatusPending {
				continue
			}
			if !withinWindow(schedule.Date, now) {
				continue
			}
			reminders = append(reminders, Reminder{
				Kind:    "schedule",
				RefID:   schedule.ID,
				Message: fmt.Sprintf("Schedule %q starts %s", schedule.Title, formatDateTime(schedule.Date)),
			})
		}
	}

	return
}

// withinWindow reports whether start lies strictly after now and no more
// than the reminder window ahead.
func withinWindow(start, now time.Time) bool {
	diff := start.Sub(now)
	return diff > 0 && diff <= ReminderWindow
}

// Current returns the latest snapshot computed by Run. Before the first tick
// it is empty.
func (s *ReminderService) Current() []Reminder {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]Reminder, len(s.snapshot))
	copy(reminders, s.snapshot)
	return reminders
}

func (s *ReminderService) refresh(ctx context.Context, now time.Time) {
	reminders, err := s.Evaluate(ctx, now)
	if err != nil {
		return
	}

	s.mu.Lock()
	previous := len(s.snapshot)
	s.snapshot = reminders
	s.mu.Unlock()

	if len(reminders) != previous {
		s.loggerWith(ctx, "Run").InfoContext(ctx, "reminder snapshot updated", "reminder_count", len(reminders))
	}
}

// Run recomputes the snapshot every interval until the context is cancelled.
// It evaluates once immediately so the snapshot is populated before the
// first tick.
func (s *ReminderService) Run(ctx context.Context, interval time.Duration, now func() time.Time) {
	if s == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	if now == nil {
		now = time.Now
	}

	s.refresh(ctx, now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.loggerWith(ctx, "Run").InfoContext(ctx, "reminder runner stopped")
			return
		case <-ticker.C:
			s.refresh(ctx, now())
		}
	}
}
