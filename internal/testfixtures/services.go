package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/schedule-studio/internal/application"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// PlanServiceDeps captures dependencies for constructing a plan service.
type PlanServiceDeps struct {
	Plans       application.PlanRepository
	Announcer   application.Announcer
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewPlanService builds a plan service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewPlanService(deps PlanServiceDeps) *application.PlanService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewPlanServiceWithLogger(
		deps.Plans,
		deps.Announcer,
		idGen,
		now,
		deps.Logger,
	)
}

// ScheduleServiceDeps captures dependencies for constructing a schedule service.
type ScheduleServiceDeps struct {
	Schedules   application.ScheduleRepository
	Announcer   application.Announcer
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewScheduleService builds a schedule service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewScheduleService(deps ScheduleServiceDeps) *application.ScheduleService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewScheduleServiceWithLogger(
		deps.Schedules,
		deps.Announcer,
		idGen,
		now,
		deps.Logger,
	)
}

// AnnouncementServiceDeps captures dependencies for constructing an
// announcement service.
type AnnouncementServiceDeps struct {
	Announcements application.AnnouncementRepository
	IDGenerator   func() string
	Now           func() time.Time
	Logger        *slog.Logger
}

// NewAnnouncementService builds an announcement service using the supplied
// dependencies.
func (f *ServiceFactory) NewAnnouncementService(deps AnnouncementServiceDeps) *application.AnnouncementService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewAnnouncementServiceWithLogger(
		deps.Announcements,
		idGen,
		now,
		deps.Logger,
	)
}
