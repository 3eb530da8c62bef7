// Package testfixtures provides deterministic clocks, identifier generators,
// and domain fixtures shared by the studio's test suites.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/schedule-studio/internal/application"
	"github.com/example/schedule-studio/internal/persistence"
	"github.com/example/schedule-studio/internal/poster"
)

var (
	planCounter         uint64
	scheduleCounter     uint64
	announcementCounter uint64
)

var referenceTime = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ----------------------------- Plan fixtures -----------------------------

// PlanOption configures the generated plan fixture.
type PlanOption func(*application.Plan)

// NewPlanFixture returns a deterministic plan with optional overrides. Each
// call yields a distinct ID and a start date one day apart.
func NewPlanFixture(opts ...PlanOption) application.Plan {
	idx := atomic.AddUint64(&planCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	plan := application.Plan{
		ID:        fmt.Sprintf("plan-%03d", idx),
		Name:      fmt.Sprintf("Plan %03d", idx),
		Type:      application.PlanTypeEvent,
		StartDate: referenceTime.Add(time.Duration(idx) * 24 * time.Hour),
		EndDate:   referenceTime.Add(time.Duration(idx+2) * 24 * time.Hour),
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&plan)
	}
	return plan
}

// WithPlanID overrides the generated plan ID.
func WithPlanID(id string) PlanOption {
	return func(p *application.Plan) { p.ID = id }
}

// WithPlanName overrides the generated plan name.
func WithPlanName(name string) PlanOption {
	return func(p *application.Plan) { p.Name = name }
}

// WithPlanType overrides the generated plan type.
func WithPlanType(planType application.PlanType) PlanOption {
	return func(p *application.Plan) { p.Type = planType }
}

// WithPlanWindow overrides the plan's start and end dates.
func WithPlanWindow(start, end time.Time) PlanOption {
	return func(p *application.Plan) {
		p.StartDate = start
		p.EndDate = end
	}
}

// --------------------------- Schedule fixtures ---------------------------

// ScheduleOption configures the generated schedule fixture.
type ScheduleOption func(*application.Schedule)

// NewScheduleFixture returns a deterministic pending schedule with optional
// overrides.
func NewScheduleFixture(opts ...ScheduleOption) application.Schedule {
	idx := atomic.AddUint64(&scheduleCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	schedule := application.Schedule{
		ID:        fmt.Sprintf("sched-%03d", idx),
		Title:     fmt.Sprintf("Schedule %03d", idx),
		Date:      referenceTime.Add(time.Duration(idx) * 12 * time.Hour),
		Status:    application.StatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&schedule)
	}
	return schedule
}

// WithScheduleID overrides the generated schedule ID.
func WithScheduleID(id string) ScheduleOption {
	return func(s *application.Schedule) { s.ID = id }
}

// WithScheduleTitle overrides the generated title.
func WithScheduleTitle(title string) ScheduleOption {
	return func(s *application.Schedule) { s.Title = title }
}

// WithScheduleDate overrides the generated date.
func WithScheduleDate(date time.Time) ScheduleOption {
	return func(s *application.Schedule) { s.Date = date }
}

// WithScheduleStatus overrides the generated status.
func WithScheduleStatus(status application.ScheduleStatus) ScheduleOption {
	return func(s *application.Schedule) { s.Status = status }
}

// WithScheduleAssignees sets the assignee lineup.
func WithScheduleAssignees(assignees ...application.Assignee) ScheduleOption {
	return func(s *application.Schedule) { s.Assignees = assignees }
}

// WithSchedulePoster attaches a poster document.
func WithSchedulePoster(data poster.Data) ScheduleOption {
	return func(s *application.Schedule) { s.Poster = &data }
}

// BoundAssignee returns an assignee bound to a named member.
func BoundAssignee(id, role, memberName string) application.Assignee {
	return application.Assignee{
		ID:       id,
		RoleName: role,
		Member:   &application.Member{Name: memberName, Age: 30, Department: "Operations"},
	}
}

// ------------------------- Announcement fixtures -------------------------

// AnnouncementOption configures the generated announcement fixture.
type AnnouncementOption func(*application.Announcement)

// NewAnnouncementFixture returns a deterministic announcement with optional
// overrides. Successive fixtures publish one minute apart.
func NewAnnouncementFixture(opts ...AnnouncementOption) application.Announcement {
	idx := atomic.AddUint64(&announcementCounter, 1)
	announcement := application.Announcement{
		ID:        fmt.Sprintf("announ-%03d", idx),
		Title:     fmt.Sprintf("Announcement %03d", idx),
		Content:   fmt.Sprintf("Announcement body %03d", idx),
		PublishAt: referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&announcement)
	}
	return announcement
}

// WithAnnouncementID overrides the generated ID.
func WithAnnouncementID(id string) AnnouncementOption {
	return func(a *application.Announcement) { a.ID = id }
}

// WithAnnouncementAuto marks the announcement as system generated.
func WithAnnouncementAuto() AnnouncementOption {
	return func(a *application.Announcement) { a.IsAuto = true }
}

// WithAnnouncementPublishAt overrides the publish time.
func WithAnnouncementPublishAt(at time.Time) AnnouncementOption {
	return func(a *application.Announcement) { a.PublishAt = at }
}

// --------------------------- Persistence shapes ---------------------------

// PersistencePlan converts an application plan to its persistence record.
func PersistencePlan(plan application.Plan) persistence.Plan {
	return persistence.Plan{
		ID:        plan.ID,
		Name:      plan.Name,
		Type:      string(plan.Type),
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}
