package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/schedule-studio/internal/persistence"
)

// PlanRepository captures the persistence operations needed by the plan service.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan Plan) error
	UpdatePlan(ctx context.Context, plan Plan) error
	GetPlan(ctx context.Context, id string) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// Announcer publishes system generated announcements. AnnouncementService
// satisfies it.
type Announcer interface {
	PublishAuto(ctx context.Context, title, content string) (Announcement, error)
}

// PlanService orchestrates validation and persistence for plans and emits an
// announcement whenever a plan is created.
type PlanService struct {
	plans       PlanRepository
	announcer   Announcer
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewPlanService constructs a plan service with the provided dependencies.
func NewPlanService(plans PlanRepository, announcer Announcer, idGenerator func() string, now func() time.Time) *PlanService {
	return NewPlanServiceWithLogger(plans, announcer, idGenerator, now, nil)
}

// NewPlanServiceWithLogger constructs a plan service with a specified logger.
func NewPlanServiceWithLogger(plans PlanRepository, announcer Announcer, idGenerator func() string, now func() time.Time, logger *slog.Logger) *PlanService {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewPlanIDGenerator(now)
	}
	return &PlanService{plans: plans, announcer: announcer, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *PlanService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PlanService", operation, attrs...)
}

// CreatePlan validates input, persists a new plan, and publishes the
// creation announcement.
func (s *PlanService) CreatePlan(ctx context.Context, input PlanInput) (plan Plan, err error) {
	if s == nil {
		err = fmt.Errorf("PlanService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreatePlan")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create plan", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("plan_id", plan.ID).InfoContext(ctx, "plan created")
	}()

	vErr := validatePlanInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	plan = Plan{
		ID:        s.idGenerator(),
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: s.now(),
	}
	plan.UpdatedAt = plan.CreatedAt

	if s.plans == nil {
		return
	}

	if err = s.plans.CreatePlan(ctx, plan); err != nil {
		err = mapPlanRepoError(err)
		plan = Plan{}
		return
	}

	s.announceCreated(ctx, logger, plan)
	return
}

// announceCreated publishes the automatic announcement for a new plan. A
// failed publish never fails the creation itself.
func (s *PlanService) announceCreated(ctx context.Context, logger *slog.Logger, plan Plan) {
	if s.announcer == nil {
		return
	}

	title := fmt.Sprintf("Plan Created: %s", plan.Name)
	content := fmt.Sprintf("New %s plan active from %s.", plan.Type, formatDate(plan.StartDate))
	if _, err := s.announcer.PublishAuto(ctx, title, content); err != nil {
		logger.WarnContext(ctx, "plan announcement not published", "error", err, "plan_id", plan.ID)
	}
}

// UpdatePlan validates input and replaces an existing plan. A missing plan
// is a silent no-op: the returned plan is the zero value and found is false.
func (s *PlanService) UpdatePlan(ctx context.Context, planID string, input PlanInput) (plan Plan, found bool, err error) {
	if s == nil {
		err = fmt.Errorf("PlanService is nil")
		return
	}
	if s.plans == nil {
		err = fmt.Errorf("plan repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "UpdatePlan", "plan_id", planID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update plan", "error", err, "error_kind", ErrorKind(err))
			return
		}
		if !found {
			logger.InfoContext(ctx, "plan update skipped, no matching plan")
			return
		}
		logger.InfoContext(ctx, "plan updated")
	}()

	vErr := validatePlanInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	existing, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(mapPlanRepoError(err), ErrNotFound) {
			err = nil
			return
		}
		err = mapPlanRepoError(err)
		return
	}

	updated := existing
	updated.Name = strings.TrimSpace(input.Name)
	updated.Type = input.Type
	updated.StartDate = input.StartDate
	updated.EndDate = input.EndDate
	updated.UpdatedAt = s.now()

	if err = s.plans.UpdatePlan(ctx, updated); err != nil {
		if errors.Is(mapPlanRepoError(err), ErrNotFound) {
			err = nil
			return
		}
		err = mapPlanRepoError(err)
		return
	}

	plan = updated
	found = true
	return
}

// DeletePlan removes a plan. Deleting an unknown ID is a silent no-op.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	if s == nil {
		return fmt.Errorf("PlanService is nil")
	}
	if s.plans == nil {
		return fmt.Errorf("plan repository not configured")
	}

	logger := s.loggerWith(ctx, "DeletePlan", "plan_id", planID)

	if err := s.plans.DeletePlan(ctx, planID); err != nil {
		if errors.Is(mapPlanRepoError(err), ErrNotFound) {
			logger.InfoContext(ctx, "plan delete skipped, no matching plan")
			return nil
		}
		err = mapPlanRepoError(err)
		logger.ErrorContext(ctx, "failed to delete plan", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	logger.InfoContext(ctx, "plan deleted")
	return nil
}

// GetPlan retrieves a single plan.
func (s *PlanService) GetPlan(ctx context.Context, planID string) (Plan, error) {
	if s == nil {
		return Plan{}, fmt.Errorf("PlanService is nil")
	}
	if s.plans == nil {
		return Plan{}, ErrNotFound
	}

	plan, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return Plan{}, mapPlanRepoError(err)
	}
	return plan, nil
}

// ListPlans returns all plans in creation order.
func (s *PlanService) ListPlans(ctx context.Context) (plans []Plan, err error) {
	if s == nil {
		err = fmt.Errorf("PlanService is nil")
		return
	}
	if s.plans == nil {
		return nil, nil
	}

	logger := s.loggerWith(ctx, "ListPlans")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list plans", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(plans)).InfoContext(ctx, "plans listed")
	}()

	plans, err = s.plans.ListPlans(ctx)
	if err != nil {
		err = mapPlanRepoError(err)
		return
	}
	return
}

func validatePlanInput(input PlanInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if !input.Type.Valid() {
		vErr.add("type", "type must be one of payroll, event, maintenance, other")
	}
	if input.StartDate.IsZero() {
		vErr.add("startDate", "start date is required")
	}
	if input.EndDate.IsZero() {
		vErr.add("endDate", "end date is required")
	}
	// Presence checks only. An end date before the start date is accepted;
	// date ordering is left to the caller.

	return vErr
}

func mapPlanRepoError(err error) error {
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
