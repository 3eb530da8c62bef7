package application

import (
	"time"

	"github.com/example/schedule-studio/internal/poster"
)

// PlanType classifies a plan.
type PlanType string

const (
	PlanTypePayroll     PlanType = "payroll"
	PlanTypeEvent       PlanType = "event"
	PlanTypeMaintenance PlanType = "maintenance"
	PlanTypeOther       PlanType = "other"
)

// Valid reports whether the plan type is one of the known values.
func (t PlanType) Valid() bool {
	switch t {
	case PlanTypePayroll, PlanTypeEvent, PlanTypeMaintenance, PlanTypeOther:
		return true
	}
	return false
}

// PlanInput captures caller provided plan fields.
type PlanInput struct {
	Name      string
	Type      PlanType
	StartDate time.Time
	EndDate   time.Time
}

// Plan represents a long-running operational plan.
type Plan struct {
	ID        string
	Name      string
	Type      PlanType
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleStatus tracks a schedule through its lifecycle.
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusCompleted ScheduleStatus = "completed"
	StatusCancelled ScheduleStatus = "cancelled"
)

// NormalizeStatus maps the empty value and the legacy "scheduled" spelling to
// pending; any other value passes through for validation.
func NormalizeStatus(status ScheduleStatus) ScheduleStatus {
	switch status {
	case "", "scheduled":
		return StatusPending
	}
	return status
}

// Valid reports whether the status is one of the known values.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Member describes a person who can be bound to a schedule role.
type Member struct {
	ID         string
	Name       string
	Age        int
	Department string
	Avatar     string
}

// Assignee binds a named role on a schedule to a member. Member is nil while
// the role is unfilled.
type Assignee struct {
	ID       string
	RoleName string
	Member   *Member
}

// Bound reports whether the assignee carries both a role name and a member.
func (a Assignee) Bound() bool {
	return a.RoleName != "" && a.Member != nil && a.Member.Name != ""
}

// ScheduleInput captures caller provided schedule fields.
type ScheduleInput struct {
	Title       string
	Date        time.Time
	Description string
	Location    string
	Status      ScheduleStatus
	Assignees   []Assignee
	Poster      *poster.Data
}

// Schedule represents a dated event with an optional poster document.
type Schedule struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Location    string
	Status      ScheduleStatus
	Assignees   []Assignee
	Poster      *poster.Data
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnnouncementInput captures caller provided announcement fields.
type AnnouncementInput struct {
	Title   string
	Content string
}

// Announcement represents a published notice. IsAuto marks announcements
// emitted by the system when plans and schedules are created.
type Announcement struct {
	ID        string
	Title     string
	Content   string
	PublishAt time.Time
	IsAuto    bool
}

// Reminder is one upcoming-start notice produced by the reminder evaluator.
type Reminder struct {
	Kind    string
	RefID   string
	Message string
}
