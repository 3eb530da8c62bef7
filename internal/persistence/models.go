package persistence

import "time"

// Plan represents a long-running operational plan stored in persistence.
type Plan struct {
	ID        string
	Name      string
	Type      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignee represents one role binding on a schedule. Member fields are
// flattened; an unbound role has an empty MemberName.
type Assignee struct {
	ID               string
	RoleName         string
	MemberName       string
	MemberAge        int
	MemberDepartment string
	MemberAvatar     string
}

// Schedule represents a calendar entry stored in persistence. Poster holds
// the serialized poster settings document; nil means no poster has been
// saved for the schedule yet.
type Schedule struct {
	ID          string
	Title       string
	Date        time.Time
	Description *string
	Location    *string
	Status      string
	Assignees   []Assignee
	Poster      []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Announcement represents a published notice, either authored by hand or
// emitted automatically when plans and schedules are created.
type Announcement struct {
	ID        string
	Title     string
	Content   string
	PublishAt time.Time
	IsAuto    bool
}
