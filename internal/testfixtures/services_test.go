package testfixtures

import (
	"context"
	"testing"
	"time"

	"github.com/example/schedule-studio/internal/application"
)

type capturingPlanRepo struct {
	created application.Plan
}

func (c *capturingPlanRepo) CreatePlan(ctx context.Context, plan application.Plan) error {
	c.created = plan
	return nil
}

func (c *capturingPlanRepo) UpdatePlan(ctx context.Context, plan application.Plan) error {
	return nil
}

func (c *capturingPlanRepo) GetPlan(ctx context.Context, id string) (application.Plan, error) {
	return application.Plan{}, application.ErrNotFound
}

func (c *capturingPlanRepo) ListPlans(ctx context.Context) ([]application.Plan, error) {
	return nil, nil
}

func (c *capturingPlanRepo) DeletePlan(ctx context.Context, id string) error {
	return nil
}

func TestServiceFactoryNewPlanService(t *testing.T) {
	factory := NewServiceFactory()
	repo := &capturingPlanRepo{}

	svc := factory.NewPlanService(PlanServiceDeps{Plans: repo})
	input := application.PlanInput{
		Name:      "Quarterly Payroll",
		Type:      application.PlanTypePayroll,
		StartDate: ReferenceTime(),
		EndDate:   ReferenceTime().Add(48 * time.Hour),
	}

	plan, err := svc.CreatePlan(context.Background(), input)
	if err != nil {
		t.Fatalf("CreatePlan returned error: %v", err)
	}

	if plan.ID != "id-1" {
		t.Fatalf("expected generated ID id-1, got %q", plan.ID)
	}
	if repo.created.ID != plan.ID {
		t.Fatalf("repository received unexpected ID: %q", repo.created.ID)
	}
	if !plan.CreatedAt.Equal(factory.Clock.Current()) {
		t.Fatalf("expected timestamp %v, got %v", factory.Clock.Current(), plan.CreatedAt)
	}
}

func TestServiceFactoryHonoursOverrides(t *testing.T) {
	clock := NewClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	factory := NewServiceFactory(WithClock(clock), WithIDGenerator(NewIDGenerator("announ")))

	svc := factory.NewAnnouncementService(AnnouncementServiceDeps{Announcements: &capturingAnnouncementRepo{}})

	announcement, err := svc.Publish(context.Background(), application.AnnouncementInput{Title: "Maintenance", Content: "Window opens tonight."})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if announcement.ID != "announ-1" {
		t.Fatalf("expected announ-1, got %q", announcement.ID)
	}
	if !announcement.PublishAt.Equal(clock.Current()) {
		t.Fatalf("expected publish time %v, got %v", clock.Current(), announcement.PublishAt)
	}
}

type capturingAnnouncementRepo struct {
	created application.Announcement
}

func (c *capturingAnnouncementRepo) CreateAnnouncement(ctx context.Context, announcement application.Announcement) error {
	c.created = announcement
	return nil
}

func (c *capturingAnnouncementRepo) ListAnnouncements(ctx context.Context) ([]application.Announcement, error) {
	return nil, nil
}

func (c *capturingAnnouncementRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	return nil
}
