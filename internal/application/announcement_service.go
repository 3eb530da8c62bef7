package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/example/schedule-studio/internal/persistence"
)

// AnnouncementRepository captures the persistence operations needed by the
// announcement service.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement Announcement) error
	ListAnnouncements(ctx context.Context) ([]Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

// AnnouncementService publishes and lists announcements. Announcements are
// immutable once published; the only mutations are create and delete.
type AnnouncementService struct {
	announcements AnnouncementRepository
	idGenerator   func() string
	now           func() time.Time
	logger        *slog.Logger
}

// NewAnnouncementService constructs an announcement service with the provided dependencies.
func NewAnnouncementService(announcements AnnouncementRepository, idGenerator func() string, now func() time.Time) *AnnouncementService {
	return NewAnnouncementServiceWithLogger(announcements, idGenerator, now, nil)
}

// NewAnnouncementServiceWithLogger constructs an announcement service with a specified logger.
func NewAnnouncementServiceWithLogger(announcements AnnouncementRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *AnnouncementService {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewAnnouncementIDGenerator(now)
	}
	return &AnnouncementService{announcements: announcements, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *AnnouncementService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AnnouncementService", operation, attrs...)
}

// Publish validates input and stores a hand-authored announcement.
func (s *AnnouncementService) Publish(ctx context.Context, input AnnouncementInput) (Announcement, error) {
	if s == nil {
		return Announcement{}, fmt.Errorf("AnnouncementService is nil")
	}

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		vErr.add("content", "content is required")
	}
	if vErr.HasErrors() {
		s.loggerWith(ctx, "Publish").ErrorContext(ctx, "failed to publish announcement", "error", vErr, "error_kind", ErrorKind(vErr))
		return Announcement{}, vErr
	}

	return s.publish(ctx, "Publish", strings.TrimSpace(input.Title), strings.TrimSpace(input.Content), false)
}

// PublishAuto stores a system generated announcement. It implements the
// Announcer interface consumed by the plan and schedule services.
func (s *AnnouncementService) PublishAuto(ctx context.Context, title, content string) (Announcement, error) {
	return s.publish(ctx, "PublishAuto", title, content, true)
}

func (s *AnnouncementService) publish(ctx context.Context, operation, title, content string, isAuto bool) (announcement Announcement, err error) {
	if s == nil {
		err = fmt.Errorf("AnnouncementService is nil")
		return
	}

	logger := s.loggerWith(ctx, operation)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to publish announcement", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("announcement_id", announcement.ID, "is_auto", isAuto).InfoContext(ctx, "announcement published")
	}()

	announcement = Announcement{
		ID:        s.idGenerator(),
		Title:     title,
		Content:   content,
		PublishAt: s.now(),
		IsAuto:    isAuto,
	}

	if s.announcements == nil {
		return
	}

	if err = s.announcements.CreateAnnouncement(ctx, announcement); err != nil {
		err = mapAnnouncementRepoError(err)
		announcement = Announcement{}
		return
	}
	return
}

// Delete removes an announcement. Deleting an unknown ID is a silent no-op.
func (s *AnnouncementService) Delete(ctx context.Context, announcementID string) error {
	if s == nil {
		return fmt.Errorf("AnnouncementService is nil")
	}
	if s.announcements == nil {
		return fmt.Errorf("announcement repository not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "announcement_id", announcementID)

	if err := s.announcements.DeleteAnnouncement(ctx, announcementID); err != nil {
		if errors.Is(mapAnnouncementRepoError(err), ErrNotFound) {
			logger.InfoContext(ctx, "announcement delete skipped, no matching announcement")
			return nil
		}
		err = mapAnnouncementRepoError(err)
		logger.ErrorContext(ctx, "failed to delete announcement", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	logger.InfoContext(ctx, "announcement deleted")
	return nil
}

// List returns all announcements newest first.
func (s *AnnouncementService) List(ctx context.Context) (announcements []Announcement, err error) {
	if s == nil {
		err = fmt.Errorf("AnnouncementService is nil")
		return
	}
	if s.announcements == nil {
		return nil, nil
	}

	logger := s.loggerWith(ctx, "List")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list announcements", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(announcements)).InfoContext(ctx, "announcements listed")
	}()

	raw, err := s.announcements.ListAnnouncements(ctx)
	if err != nil {
		err = mapAnnouncementRepoError(err)
		return
	}

	announcements = make([]Announcement, len(raw))
	copy(announcements, raw)

	sort.SliceStable(announcements, func(i, j int) bool {
		if announcements[i].PublishAt.Equal(announcements[j].PublishAt) {
			return announcements[i].ID > announcements[j].ID
		}
		return announcements[i].PublishAt.After(announcements[j].PublishAt)
	})

	return
}

func mapAnnouncementRepoError(err error) error {
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
