package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/schedule-studio/internal/persistence"
	"github.com/example/schedule-studio/internal/poster"
)

type stubScheduleRepo struct {
	schedules map[string]Schedule
	getErr    error
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{schedules: make(map[string]Schedule)}
}

func (r *stubScheduleRepo) CreateSchedule(ctx context.Context, schedule Schedule) error {
	if _, ok := r.schedules[schedule.ID]; ok {
		return persistence.ErrDuplicate
	}
	r.schedules[schedule.ID] = schedule
	return nil
}

func (r *stubScheduleRepo) UpdateSchedule(ctx context.Context, schedule Schedule) error {
	if _, ok := r.schedules[schedule.ID]; !ok {
		return persistence.ErrNotFound
	}
	r.schedules[schedule.ID] = schedule
	return nil
}

func (r *stubScheduleRepo) GetSchedule(ctx context.Context, id string) (Schedule, error) {
	if r.getErr != nil {
		return Schedule{}, r.getErr
	}
	schedule, ok := r.schedules[id]
	if !ok {
		return Schedule{}, persistence.ErrNotFound
	}
	return schedule, nil
}

func (r *stubScheduleRepo) ListSchedules(ctx context.Context) ([]Schedule, error) {
	schedules := make([]Schedule, 0, len(r.schedules))
	for _, schedule := range r.schedules {
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

func (r *stubScheduleRepo) DeleteSchedule(ctx context.Context, id string) error {
	if _, ok := r.schedules[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func validScheduleInput(date time.Time) ScheduleInput {
	return ScheduleInput{
		Title:    "Town Hall",
		Date:     date,
		Location: "Main Hall",
		Status:   StatusPending,
	}
}

func newScheduleService(repo *stubScheduleRepo, announcer Announcer, clock *manualClock) *ScheduleService {
	return NewScheduleService(repo, announcer, newTestIDSequence("sched").NextFunc(), clock.NowFunc())
}

func TestCreateScheduleDropsUnboundAssignees(t *testing.T) {
	repo := newStubScheduleRepo()
	service := newScheduleService(repo, nil, newManualClock(time.Time{}))

	input := validScheduleInput(referenceTime)
	input.Assignees = []Assignee{
		{ID: "a1", RoleName: "Host", Member: &Member{Name: "Mika Sato"}},
		{ID: "a2", RoleName: "", Member: &Member{Name: "Ren Ito"}},
		{ID: "a3", RoleName: "Notes", Member: nil},
		{ID: "a4", RoleName: "Greeter", Member: &Member{Name: ""}},
	}

	schedule, err := service.CreateSchedule(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}
	if len(schedule.Assignees) != 1 || schedule.Assignees[0].ID != "a1" {
		t.Fatalf("expected only the bound assignee to survive, got %+v", schedule.Assignees)
	}
}

func TestCreateScheduleNormalizesLegacyStatus(t *testing.T) {
	repo := newStubScheduleRepo()
	service := newScheduleService(repo, nil, newManualClock(time.Time{}))

	input := validScheduleInput(referenceTime)
	input.Status = "scheduled"

	schedule, err := service.CreateSchedule(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}
	if schedule.Status != StatusPending {
		t.Fatalf("legacy status not normalized, got %q", schedule.Status)
	}
}

func TestCreateScheduleRejectsUnknownStatus(t *testing.T) {
	service := newScheduleService(newStubScheduleRepo(), nil, newManualClock(time.Time{}))

	input := validScheduleInput(referenceTime)
	input.Status = "postponed"

	_, err := service.CreateSchedule(context.Background(), input)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.FieldErrors["status"]; !ok {
		t.Fatalf("expected status field error, got %v", vErr.FieldErrors)
	}
}

func TestCreateScheduleAnnouncementWording(t *testing.T) {
	date := time.Date(2026, time.June, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mutate      func(*ScheduleInput)
		wantContent string
	}{
		{
			"with location",
			func(in *ScheduleInput) {},
			"New event set for 6/12/2026, 3:30:00 PM at Main Hall.",
		},
		{
			"without location",
			func(in *ScheduleInput) { in.Location = "" },
			"New event set for 6/12/2026, 3:30:00 PM.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			announcer := &recordingAnnouncer{}
			service := newScheduleService(newStubScheduleRepo(), announcer, newManualClock(time.Time{}))

			input := validScheduleInput(date)
			tc.mutate(&input)

			if _, err := service.CreateSchedule(context.Background(), input); err != nil {
				t.Fatalf("CreateSchedule failed: %v", err)
			}
			if len(announcer.published) != 1 {
				t.Fatalf("expected one announcement, got %d", len(announcer.published))
			}
			got := announcer.published[0]
			if got.Title != "New Schedule: Town Hall" {
				t.Fatalf("unexpected title %q", got.Title)
			}
			if got.Content != tc.wantContent {
				t.Fatalf("unexpected content %q, want %q", got.Content, tc.wantContent)
			}
		})
	}
}

func TestUpdateScheduleMissingIDIsSilentNoop(t *testing.T) {
	service := newScheduleService(newStubScheduleRepo(), nil, newManualClock(time.Time{}))

	schedule, found, err := service.UpdateSchedule(context.Background(), "sched-missing", validScheduleInput(referenceTime))
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if found || schedule.ID != "" {
		t.Fatalf("expected zero result, got found=%v %+v", found, schedule)
	}
}

func TestUpdateScheduleDoesNotAnnounce(t *testing.T) {
	announcer := &recordingAnnouncer{}
	repo := newStubScheduleRepo()
	service := newScheduleService(repo, announcer, newManualClock(time.Time{}))

	created, err := service.CreateSchedule(context.Background(), validScheduleInput(referenceTime))
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}
	if len(announcer.published) != 1 {
		t.Fatalf("expected one announcement after create, got %d", len(announcer.published))
	}

	if _, _, err := service.UpdateSchedule(context.Background(), created.ID, validScheduleInput(referenceTime)); err != nil {
		t.Fatalf("UpdateSchedule failed: %v", err)
	}
	if len(announcer.published) != 1 {
		t.Fatal("updates must not publish announcements")
	}
}

func TestUpdateSchedulePreservesPosterWhenInputOmitsIt(t *testing.T) {
	clock := newManualClock(time.Time{})
	repo := newStubScheduleRepo()
	service := newScheduleService(repo, nil, clock)

	input := validScheduleInput(referenceTime)
	data := poster.DefaultData()
	input.Poster = &data

	created, err := service.CreateSchedule(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	update := validScheduleInput(referenceTime)
	update.Title = "Town Hall v2"
	updated, found, err := service.UpdateSchedule(context.Background(), created.ID, update)
	if err != nil || !found {
		t.Fatalf("UpdateSchedule failed: found=%v err=%v", found, err)
	}
	if updated.Poster == nil {
		t.Fatal("poster must survive an update that omits it")
	}
}

func TestSavePoster(t *testing.T) {
	clock := newManualClock(time.Time{})
	repo := newStubScheduleRepo()
	service := newScheduleService(repo, nil, clock)

	created, err := service.CreateSchedule(context.Background(), validScheduleInput(referenceTime))
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	data := poster.DefaultData()
	data.AspectRatio = poster.RatioStory
	if err := service.SavePoster(context.Background(), created.ID, data); err != nil {
		t.Fatalf("SavePoster failed: %v", err)
	}

	stored, err := service.GetSchedule(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetSchedule failed: %v", err)
	}
	if stored.Poster == nil || stored.Poster.AspectRatio != poster.RatioStory {
		t.Fatalf("poster not saved: %+v", stored.Poster)
	}

	bad := poster.DefaultData()
	bad.AspectRatio = "banner"
	var vErr *ValidationError
	if err := service.SavePoster(context.Background(), created.ID, bad); !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for unknown ratio, got %v", err)
	}

	if err := service.SavePoster(context.Background(), "sched-missing", data); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteScheduleMissingIDIsSilentNoop(t *testing.T) {
	service := newScheduleService(newStubScheduleRepo(), nil, newManualClock(time.Time{}))
	if err := service.DeleteSchedule(context.Background(), "sched-missing"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}
