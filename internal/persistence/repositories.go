package persistence

import "context"

// PlanRepository exposes CRUD operations for plans.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan Plan) error
	UpdatePlan(ctx context.Context, plan Plan) error
	GetPlan(ctx context.Context, id string) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// ScheduleRepository stores schedule entries together with their assignee
// lineup and serialized poster settings.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule Schedule) error
	UpdateSchedule(ctx context.Context, schedule Schedule) error
	GetSchedule(ctx context.Context, id string) (Schedule, error)
	ListSchedules(ctx context.Context) ([]Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

// AnnouncementRepository stores published notices.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement Announcement) error
	ListAnnouncements(ctx context.Context) ([]Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}
