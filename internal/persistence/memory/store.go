// Package memory provides the authoritative in-process implementation of the
// persistence repositories. All state lives in maps behind a single mutex;
// reads hand out clones so callers can never mutate stored records.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/example/schedule-studio/internal/persistence"
)

// Store holds plans, schedules, and announcements in memory.
type Store struct {
	mu            sync.RWMutex
	plans         map[string]persistence.Plan
	schedules     map[string]persistence.Schedule
	announcements map[string]persistence.Announcement
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		plans:         make(map[string]persistence.Plan),
		schedules:     make(map[string]persistence.Schedule),
		announcements: make(map[string]persistence.Announcement),
	}
}

// Close releases resources held by the store. No-op for the in-memory implementation.
func (s *Store) Close() error {
	return nil
}

// --- PlanRepository implementation ---

// CreatePlan stores a new plan.
func (s *Store) CreatePlan(ctx context.Context, plan persistence.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[plan.ID]; ok {
		return fmt.Errorf("memory: plan %s: %w", plan.ID, persistence.ErrDuplicate)
	}

	s.plans[plan.ID] = plan
	return nil
}

// UpdatePlan replaces an existing plan.
func (s *Store) UpdatePlan(ctx context.Context, plan persistence.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[plan.ID]; !ok {
		return persistence.ErrNotFound
	}

	s.plans[plan.ID] = plan
	return nil
}

// GetPlan retrieves a plan by ID.
func (s *Store) GetPlan(ctx context.Context, id string) (persistence.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return persistence.Plan{}, persistence.ErrNotFound
	}

	return plan, nil
}

// ListPlans returns all plans ordered by CreatedAt ascending.
func (s *Store) ListPlans(ctx context.Context) ([]persistence.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := make([]persistence.Plan, 0, len(s.plans))
	for _, plan := range s.plans {
		plans = append(plans, plan)
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID < plans[j].ID
		}
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})

	return plans, nil
}

// DeletePlan removes a plan by ID.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[id]; !ok {
		return persistence.ErrNotFound
	}

	delete(s.plans, id)
	return nil
}

// --- ScheduleRepository implementation ---

// CreateSchedule stores a new schedule with its assignees and poster blob.
func (s *Store) CreateSchedule(ctx context.Context, schedule persistence.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[schedule.ID]; ok {
		return fmt.Errorf("memory: schedule %s: %w", schedule.ID, persistence.ErrDuplicate)
	}

	s.schedules[schedule.ID] = cloneSchedule(schedule)
	return nil
}

// UpdateSchedule replaces an existing schedule. CreatedAt is preserved from
// the stored record.
func (s *Store) UpdateSchedule(ctx context.Context, schedule persistence.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.schedules[schedule.ID]
	if !ok {
		return persistence.ErrNotFound
	}

	schedule.CreatedAt = existing.CreatedAt
	s.schedules[schedule.ID] = cloneSchedule(schedule)
	return nil
}

// GetSchedule retrieves a schedule by ID.
func (s *Store) GetSchedule(ctx context.Context, id string) (persistence.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, ok := s.schedules[id]
	if !ok {
		return persistence.Schedule{}, persistence.ErrNotFound
	}

	return cloneSchedule(schedule), nil
}

// ListSchedules returns all schedules ordered by Date ascending.
func (s *Store) ListSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedules := make([]persistence.Schedule, 0, len(s.schedules))
	for _, schedule := range s.schedules {
		schedules = append(schedules, cloneSchedule(schedule))
	}

	sort.Slice(schedules, func(i, j int) bool {
		if schedules[i].Date.Equal(schedules[j].Date) {
			return schedules[i].ID < schedules[j].ID
		}
		return schedules[i].Date.Before(schedules[j].Date)
	})

	return schedules, nil
}

// DeleteSchedule removes a schedule by ID.
func (s *Store) DeleteSchedule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return persistence.ErrNotFound
	}

	delete(s.schedules, id)
	return nil
}

// --- AnnouncementRepository implementation ---

// CreateAnnouncement stores a new announcement.
func (s *Store) CreateAnnouncement(ctx context.Context, announcement persistence.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.announcements[announcement.ID]; ok {
		return fmt.Errorf("memory: announcement %s: %w", announcement.ID, persistence.ErrDuplicate)
	}

	s.announcements[announcement.ID] = announcement
	return nil
}

// ListAnnouncements returns all announcements ordered by PublishAt descending,
// newest first.
func (s *Store) ListAnnouncements(ctx context.Context) ([]persistence.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	announcements := make([]persistence.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		announcements = append(announcements, announcement)
	}

	sort.Slice(announcements, func(i, j int) bool {
		if announcements[i].PublishAt.Equal(announcements[j].PublishAt) {
			return announcements[i].ID > announcements[j].ID
		}
		return announcements[i].PublishAt.After(announcements[j].PublishAt)
	})

	return announcements, nil
}

// DeleteAnnouncement removes an announcement by ID.
func (s *Store) DeleteAnnouncement(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.announcements[id]; !ok {
		return persistence.ErrNotFound
	}

	delete(s.announcements, id)
	return nil
}

// --- Helpers ---

func cloneSchedule(schedule persistence.Schedule) persistence.Schedule {
	out := schedule

	if schedule.Description != nil {
		description := *schedule.Description
		out.Description = &description
	}
	if schedule.Location != nil {
		location := *schedule.Location
		out.Location = &location
	}
	if schedule.Assignees != nil {
		out.Assignees = make([]persistence.Assignee, len(schedule.Assignees))
		copy(out.Assignees, schedule.Assignees)
	}
	if schedule.Poster != nil {
		out.Poster = make([]byte, len(schedule.Poster))
		copy(out.Poster, schedule.Poster)
	}

	return out
}
