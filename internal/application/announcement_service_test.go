package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/schedule-studio/internal/persistence"
)

type stubAnnouncementRepo struct {
	announcements map[string]Announcement
}

func newStubAnnouncementRepo() *stubAnnouncementRepo {
	return &stubAnnouncementRepo{announcements: make(map[string]Announcement)}
}

func (r *stubAnnouncementRepo) CreateAnnouncement(ctx context.Context, announcement Announcement) error {
	if _, ok := r.announcements[announcement.ID]; ok {
		return persistence.ErrDuplicate
	}
	r.announcements[announcement.ID] = announcement
	return nil
}

func (r *stubAnnouncementRepo) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	announcements := make([]Announcement, 0, len(r.announcements))
	for _, announcement := range r.announcements {
		announcements = append(announcements, announcement)
	}
	return announcements, nil
}

func (r *stubAnnouncementRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	if _, ok := r.announcements[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.announcements, id)
	return nil
}

func TestPublishValidation(t *testing.T) {
	service := NewAnnouncementService(newStubAnnouncementRepo(), nil, nil)

	_, err := service.Publish(context.Background(), AnnouncementInput{Title: " ", Content: ""})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.FieldErrors) != 2 {
		t.Fatalf("expected title and content errors, got %v", vErr.FieldErrors)
	}
}

func TestPublishStampsClockAndGenerator(t *testing.T) {
	clock := newManualClock(time.Time{})
	repo := newStubAnnouncementRepo()
	ids := newTestIDSequence("announ")
	service := NewAnnouncementService(repo, ids.NextFunc(), clock.NowFunc())

	announcement, err := service.Publish(context.Background(), AnnouncementInput{Title: "Office Closure", Content: "Closed Friday."})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if announcement.ID != "announ-1" {
		t.Fatalf("unexpected id %q", announcement.ID)
	}
	if !announcement.PublishAt.Equal(clock.Now()) {
		t.Fatal("PublishAt not taken from the clock")
	}
	if announcement.IsAuto {
		t.Fatal("hand-authored announcements must not be marked auto")
	}
}

func TestPublishAutoIsMarkedAuto(t *testing.T) {
	service := NewAnnouncementService(newStubAnnouncementRepo(), newTestIDSequence("announ").NextFunc(), newManualClock(time.Time{}).NowFunc())

	announcement, err := service.PublishAuto(context.Background(), "Plan Created: X", "New event plan active from 1/1/2026.")
	if err != nil {
		t.Fatalf("PublishAuto failed: %v", err)
	}
	if !announcement.IsAuto {
		t.Fatal("expected IsAuto")
	}
}

func TestListNewestFirst(t *testing.T) {
	clock := newManualClock(time.Time{})
	service := NewAnnouncementService(newStubAnnouncementRepo(), newTestIDSequence("announ").NextFunc(), clock.NowFunc())

	if _, err := service.Publish(context.Background(), AnnouncementInput{Title: "First", Content: "a"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	clock.Advance(time.Minute)
	if _, err := service.Publish(context.Background(), AnnouncementInput{Title: "Second", Content: "b"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	announcements, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(announcements) != 2 || announcements[0].Title != "Second" {
		t.Fatalf("expected newest first, got %+v", announcements)
	}
}

func TestDeleteAnnouncementMissingIDIsSilentNoop(t *testing.T) {
	service := NewAnnouncementService(newStubAnnouncementRepo(), nil, nil)
	if err := service.Delete(context.Background(), "announ-missing"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}
