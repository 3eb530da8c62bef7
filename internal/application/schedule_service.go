package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/schedule-studio/internal/persistence"
	"github.com/example/schedule-studio/internal/poster"
)

// ScheduleRepository captures the persistence operations needed by the
// schedule service.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule Schedule) error
	UpdateSchedule(ctx context.Context, schedule Schedule) error
	GetSchedule(ctx context.Context, id string) (Schedule, error)
	ListSchedules(ctx context.Context) ([]Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

// ScheduleService orchestrates validation and persistence for schedules and
// emits an announcement whenever a schedule is created.
type ScheduleService struct {
	schedules   ScheduleRepository
	announcer   Announcer
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewScheduleService constructs a schedule service with the provided dependencies.
func NewScheduleService(schedules ScheduleRepository, announcer Announcer, idGenerator func() string, now func() time.Time) *ScheduleService {
	return NewScheduleServiceWithLogger(schedules, announcer, idGenerator, now, nil)
}

// NewScheduleServiceWithLogger constructs a schedule service with a specified logger.
func NewScheduleServiceWithLogger(schedules ScheduleRepository, announcer Announcer, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewScheduleIDGenerator(now)
	}
	return &ScheduleService{schedules: schedules, announcer: announcer, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *ScheduleService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ScheduleService", operation, attrs...)
}

// CreateSchedule validates input, persists a new schedule, and publishes the
// creation announcement. Assignees without both a role name and a bound
// member are dropped before the schedule is stored.
func (s *ScheduleService) CreateSchedule(ctx context.Context, input ScheduleInput) (schedule Schedule, err error) {
	if s == nil {
		err = fmt.Errorf("ScheduleService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreateSchedule")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create schedule", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("schedule_id", schedule.ID).InfoContext(ctx, "schedule created")
	}()

	status := NormalizeStatus(input.Status)
	vErr := validateScheduleInput(input, status)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	schedule = Schedule{
		ID:          s.idGenerator(),
		Title:       strings.TrimSpace(input.Title),
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Status:      status,
		Assignees:   boundAssignees(input.Assignees),
		Poster:      clonePosterData(input.Poster),
		CreatedAt:   s.now(),
	}
	schedule.UpdatedAt = schedule.CreatedAt

	if s.schedules == nil {
		return
	}

	if err = s.schedules.CreateSchedule(ctx, schedule); err != nil {
		err = mapScheduleRepoError(err)
		schedule = Schedule{}
		return
	}

	s.announceCreated(ctx, logger, schedule)
	return
}

// announceCreated publishes the automatic announcement for a new schedule. A
// failed publish never fails the creation itself.
func (s *ScheduleService) announceCreated(ctx context.Context, logger *slog.Logger, schedule Schedule) {
	if s.announcer == nil {
		return
	}

	when := "TBD"
	if !schedule.Date.IsZero() {
		when = formatDateTime(schedule.Date)
	}
	content := fmt.Sprintf("New event set for %s", when)
	if schedule.Location != "" {
		content += " at " + schedule.Location
	}
	content += "."

	title := fmt.Sprintf("New Schedule: %s", schedule.Title)
	if _, err := s.announcer.PublishAuto(ctx, title, content); err != nil {
		logger.WarnContext(ctx, "schedule announcement not published", "error", err, "schedule_id", schedule.ID)
	}
}

// UpdateSchedule validates input and replaces an existing schedule. A missing
// schedule is a silent no-op: the returned schedule is the zero value and
// found is false.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID string, input ScheduleInput) (schedule Schedule, found bool, err error) {
	if s == nil {
		err = fmt.Errorf("ScheduleService is nil")
		return
	}
	if s.schedules == nil {
		err = fmt.Errorf("schedule repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "UpdateSchedule", "schedule_id", scheduleID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update schedule", "error", err, "error_kind", ErrorKind(err))
			return
		}
		if !found {
			logger.InfoContext(ctx, "schedule update skipped, no matching schedule")
			return
		}
		logger.InfoContext(ctx, "schedule updated")
	}()

	status := NormalizeStatus(input.Status)
	vErr := validateScheduleInput(input, status)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	existing, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		if errors.Is(mapScheduleRepoError(err), ErrNotFound) {
			err = nil
			return
		}
		err = mapScheduleRepoError(err)
		return
	}

	updated := existing
	updated.Title = strings.TrimSpace(input.Title)
	updated.Date = input.Date
	updated.Description = strings.TrimSpace(input.Description)
	updated.Location = strings.TrimSpace(input.Location)
	updated.Status = status
	updated.Assignees = boundAssignees(input.Assignees)
	if input.Poster != nil {
		updated.Poster = clonePosterData(input.Poster)
	}
	updated.UpdatedAt = s.now()

	if err = s.schedules.UpdateSchedule(ctx, updated); err != nil {
		if errors.Is(mapScheduleRepoError(err), ErrNotFound) {
			err = nil
			return
		}
		err = mapScheduleRepoError(err)
		return
	}

	schedule = updated
	found = true
	return
}

// SavePoster stores the poster document for a schedule.
func (s *ScheduleService) SavePoster(ctx context.Context, scheduleID string, data poster.Data) (err error) {
	if s == nil {
		return fmt.Errorf("ScheduleService is nil")
	}
	if s.schedules == nil {
		return fmt.Errorf("schedule repository not configured")
	}

	logger := s.loggerWith(ctx, "SavePoster", "schedule_id", scheduleID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to save poster", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "poster saved")
	}()

	if !data.AspectRatio.Valid() {
		vErr := &ValidationError{}
		vErr.add("aspectRatio", "unknown aspect ratio")
		err = vErr
		return
	}

	existing, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		err = mapScheduleRepoError(err)
		return
	}

	existing.Poster = &data
	existing.UpdatedAt = s.now()

	if err = s.schedules.UpdateSchedule(ctx, existing); err != nil {
		err = mapScheduleRepoError(err)
		return
	}
	return
}

// DeleteSchedule removes a schedule. Deleting an unknown ID is a silent no-op.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if s == nil {
		return fmt.Errorf("ScheduleService is nil")
	}
	if s.schedules == nil {
		return fmt.Errorf("schedule repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteSchedule", "schedule_id", scheduleID)

	if err := s.schedules.DeleteSchedule(ctx, scheduleID); err != nil {
		if errors.Is(mapScheduleRepoError(err), ErrNotFound) {
			logger.InfoContext(ctx, "schedule delete skipped, no matching schedule")
			return nil
		}
		err = mapScheduleRepoError(err)
		logger.ErrorContext(ctx, "failed to delete schedule", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	logger.InfoContext(ctx, "schedule deleted")
	return nil
}

// GetSchedule retrieves a single schedule.
func (s *ScheduleService) GetSchedule(ctx context.Context, scheduleID string) (Schedule, error) {
	if s == nil {
		return Schedule{}, fmt.Errorf("ScheduleService is nil")
	}
	if s.schedules == nil {
		return Schedule{}, ErrNotFound
	}

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return Schedule{}, mapScheduleRepoError(err)
	}
	return schedule, nil
}

// ListSchedules returns all schedules in date order.
func (s *ScheduleService) ListSchedules(ctx context.Context) (schedules []Schedule, err error) {
	if s == nil {
		err = fmt.Errorf("ScheduleService is nil")
		return
	}
	if s.schedules == nil {
		return nil, nil
	}

	logger := s.loggerWith(ctx, "ListSchedules")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list schedules", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(schedules)).InfoContext(ctx, "schedules listed")
	}()

	schedules, err = s.schedules.ListSchedules(ctx)
	if err != nil {
		err = mapScheduleRepoError(err)
		return
	}
	return
}

// boundAssignees keeps only assignees that carry both a role name and a
// member; unbound rows never reach persistence.
func boundAssignees(assignees []Assignee) []Assignee {
	if len(assignees) == 0 {
		return nil
	}
	kept := make([]Assignee, 0, len(assignees))
	for _, assignee := range assignees {
		if !assignee.Bound() {
			continue
		}
		member := *assignee.Member
		assignee.Member = &member
		kept = append(kept, assignee)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func clonePosterData(data *poster.Data) *poster.Data {
	if data == nil {
		return nil
	}
	cloned := *data
	return &cloned
}

func validateScheduleInput(input ScheduleInput, status ScheduleStatus) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if input.Date.IsZero() {
		vErr.add("date", "date is required")
	}
	if !status.Valid() {
		vErr.add("status", "status must be one of pending, completed, cancelled")
	}
	if input.Poster != nil && !input.Poster.AspectRatio.Valid() {
		vErr.add("aspectRatio", "unknown aspect ratio")
	}

	return vErr
}

func mapScheduleRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, persistence.ErrDuplicate) {
		return ErrAlreadyExists
	}
	return err
}
