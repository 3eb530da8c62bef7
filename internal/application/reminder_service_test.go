package application

import (
	"context"
	"testing"
	"time"
)

func reminderFixtures(now time.Time) (*stubPlanRepo, *stubScheduleRepo) {
	plans := newStubPlanRepo()
	plans.plans["plan-soon"] = Plan{
		ID:        "plan-soon",
		Name:      "Maintenance Window",
		Type:      PlanTypeMaintenance,
		StartDate: now.Add(6 * time.Hour),
	}
	plans.plans["plan-far"] = Plan{
		ID:        "plan-far",
		Name:      "Yearly Audit",
		Type:      PlanTypeOther,
		StartDate: now.Add(48 * time.Hour),
	}
	plans.plans["plan-past"] = Plan{
		ID:        "plan-past",
		Name:      "Last Week",
		Type:      PlanTypeEvent,
		StartDate: now.Add(-time.Hour),
	}

	schedules := newStubScheduleRepo()
	schedules.schedules["sched-soon"] = Schedule{
		ID:     "sched-soon",
		Title:  "Kickoff",
		Date:   now.Add(3 * time.Hour),
		Status: StatusPending,
	}
	schedules.schedules["sched-done"] = Schedule{
		ID:     "sched-done",
		Title:  "Retro",
		Date:   now.Add(2 * time.Hour),
		Status: StatusCompleted,
	}
	schedules.schedules["sched-cancelled"] = Schedule{
		ID:     "sched-cancelled",
		Title:  "Offsite",
		Date:   now.Add(4 * time.Hour),
		Status: StatusCancelled,
	}

	return plans, schedules
}

func TestEvaluateWindowAndOrdering(t *testing.T) {
	now := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
	plans, schedules := reminderFixtures(now)
	service := NewReminderService(plans, schedules)

	reminders, err := service.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %+v", reminders)
	}
	if reminders[0].Kind != "plan" || reminders[0].RefID != "plan-soon" {
		t.Fatalf("plan reminders must come first, got %+v", reminders[0])
	}
	if reminders[1].Kind != "schedule" || reminders[1].RefID != "sched-soon" {
		t.Fatalf("expected the pending schedule, got %+v", reminders[1])
	}

	if reminders[0].Message != `Plan "Maintenance Window" starts 7/1/2026` {
		t.Fatalf("unexpected plan wording %q", reminders[0].Message)
	}
	if reminders[1].Message != `Schedule "Kickoff" starts 7/1/2026, 11:00:00 AM` {
		t.Fatalf("unexpected schedule wording %q", reminders[1].Message)
	}
}

func TestEvaluateWindowEdges(t *testing.T) {
	now := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"exactly now", now, false},
		{"one second ahead", now.Add(time.Second), true},
		{"exactly 24h ahead", now.Add(24 * time.Hour), true},
		{"just past 24h", now.Add(24*time.Hour + time.Second), false},
		{"in the past", now.Add(-time.Second), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plans := newStubPlanRepo()
			plans.plans["plan-1"] = Plan{ID: "plan-1", Name: "Edge", Type: PlanTypeOther, StartDate: tc.start}
			service := NewReminderService(plans, newStubScheduleRepo())

			reminders, err := service.Evaluate(context.Background(), now)
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			if got := len(reminders) == 1; got != tc.want {
				t.Fatalf("start %v: in window = %v, want %v", tc.start, got, tc.want)
			}
		})
	}
}

func TestRunPopulatesSnapshotAndStopsOnCancel(t *testing.T) {
	now := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
	plans, schedules := reminderFixtures(now)
	service := NewReminderService(plans, schedules)
	clock := newManualClock(now)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx, time.Hour, clock.NowFunc())
		close(done)
	}()

	// The immediate evaluation runs before the first tick.
	deadline := time.After(2 * time.Second)
	for len(service.Current()) != 2 {
		select {
		case <-deadline:
			t.Fatalf("snapshot never populated: %+v", service.Current())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop on context cancellation")
	}
}
