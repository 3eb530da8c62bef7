// Package sqlite implements the persistence repositories on SQLite using the
// pure Go modernc.org/sqlite driver. Timestamps are stored as RFC 3339 text
// and poster settings as a JSON column, so the schema stays portable and
// inspectable with any SQLite shell.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/example/schedule-studio/internal/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS plans (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedules (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	date        TEXT NOT NULL,
	description TEXT,
	location    TEXT,
	status      TEXT NOT NULL,
	poster      TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_assignees (
	schedule_id       TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
	id                TEXT NOT NULL,
	role_name         TEXT NOT NULL,
	member_name       TEXT NOT NULL,
	member_age        INTEGER NOT NULL,
	member_department TEXT NOT NULL,
	member_avatar     TEXT NOT NULL,
	position          INTEGER NOT NULL,
	PRIMARY KEY (schedule_id, id)
);

CREATE TABLE IF NOT EXISTS announcements (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	publish_at TEXT NOT NULL,
	is_auto    INTEGER NOT NULL DEFAULT 0
);
`

// Storage provides a SQLite backed persistence layer implementation.
type Storage struct {
	db *sql.DB
}

// Open connects to the database identified by dsn and ensures the schema
// exists.
func Open(dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("sqlite: transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit transaction: %w", err)
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return persistence.ErrDuplicate
	}
	return err
}

// --- PlanRepository implementation ---

// CreatePlan inserts a new plan.
func (s *Storage) CreatePlan(ctx context.Context, plan persistence.Plan) error {
	query := `
		INSERT INTO plans (id, name, type, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		plan.ID,
		plan.Name,
		plan.Type,
		plan.StartDate.UTC().Format(time.RFC3339Nano),
		plan.EndDate.UTC().Format(time.RFC3339Nano),
		plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return mapError(err)
}

// UpdatePlan replaces an existing plan.
func (s *Storage) UpdatePlan(ctx context.Context, plan persistence.Plan) error {
	query := `
		UPDATE plans
		SET name = ?, type = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		plan.Name,
		plan.Type,
		plan.StartDate.UTC().Format(time.RFC3339Nano),
		plan.EndDate.UTC().Format(time.RFC3339Nano),
		plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
		plan.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(result)
}

// GetPlan retrieves a plan by ID.
func (s *Storage) GetPlan(ctx context.Context, id string) (persistence.Plan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, type, start_date, end_date, created_at, updated_at
		FROM plans WHERE id = ?
	`, id)
	return scanPlan(row)
}

// ListPlans returns all plans ordered by creation time.
func (s *Storage) ListPlans(ctx context.Context) ([]persistence.Plan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, start_date, end_date, created_at, updated_at
		FROM plans ORDER BY created_at, id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	plans := make([]persistence.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// DeletePlan removes a plan by ID.
func (s *Storage) DeletePlan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(result)
}

// --- ScheduleRepository implementation ---

// CreateSchedule inserts a schedule together with its assignee lineup.
func (s *Storage) CreateSchedule(ctx context.Context, schedule persistence.Schedule) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO schedules (id, title, date, description, location, status, poster, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			schedule.ID,
			schedule.Title,
			schedule.Date.UTC().Format(time.RFC3339Nano),
			nullString(schedule.Description),
			nullString(schedule.Location),
			schedule.Status,
			nullBytes(schedule.Poster),
			schedule.CreatedAt.UTC().Format(time.RFC3339Nano),
			schedule.UpdatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return mapError(err)
		}
		return insertAssignees(ctx, tx, schedule.ID, schedule.Assignees)
	})
}

// UpdateSchedule replaces an existing schedule and its assignees. CreatedAt
// is preserved from the stored row.
func (s *Storage) UpdateSchedule(ctx context.Context, schedule persistence.Schedule) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE schedules
			SET title = ?, date = ?, description = ?, location = ?, status = ?, poster = ?, updated_at = ?
			WHERE id = ?
		`
		result, err := tx.ExecContext(ctx, query,
			schedule.Title,
			schedule.Date.UTC().Format(time.RFC3339Nano),
			nullString(schedule.Description),
			nullString(schedule.Location),
			schedule.Status,
			nullBytes(schedule.Poster),
			schedule.UpdatedAt.UTC().Format(time.RFC3339Nano),
			schedule.ID,
		)
		if err != nil {
			return mapError(err)
		}
		if err := requireRowAffected(result); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_assignees WHERE schedule_id = ?", schedule.ID); err != nil {
			return mapError(err)
		}
		return insertAssignees(ctx, tx, schedule.ID, schedule.Assignees)
	})
}

// GetSchedule retrieves a schedule by ID.
func (s *Storage) GetSchedule(ctx context.Context, id string) (persistence.Schedule, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, date, description, location, status, poster, created_at, updated_at
		FROM schedules WHERE id = ?
	`, id)

	schedule, err := scanSchedule(row)
	if err != nil {
		return persistence.Schedule{}, err
	}

	assignees, err := s.loadAssignees(ctx, id)
	if err != nil {
		return persistence.Schedule{}, err
	}
	schedule.Assignees = assignees
	return schedule, nil
}

// ListSchedules returns all schedules ordered by date.
func (s *Storage) ListSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, date, description, location, status, poster, created_at, updated_at
		FROM schedules ORDER BY date, id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	schedules := make([]persistence.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range schedules {
		assignees, err := s.loadAssignees(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Assignees = assignees
	}
	return schedules, nil
}

// DeleteSchedule removes a schedule and its assignees.
func (s *Storage) DeleteSchedule(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(result)
}

func insertAssignees(ctx context.Context, tx *sql.Tx, scheduleID string, assignees []persistence.Assignee) error {
	for position, assignee := range assignees {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_assignees (schedule_id, id, role_name, member_name, member_age, member_department, member_avatar, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			scheduleID,
			assignee.ID,
			assignee.RoleName,
			assignee.MemberName,
			assignee.MemberAge,
			assignee.MemberDepartment,
			assignee.MemberAvatar,
			position,
		)
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}

func (s *Storage) loadAssignees(ctx context.Context, scheduleID string) ([]persistence.Assignee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role_name, member_name, member_age, member_department, member_avatar
		FROM schedule_assignees WHERE schedule_id = ? ORDER BY position
	`, scheduleID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	assignees := make([]persistence.Assignee, 0)
	for rows.Next() {
		var assignee persistence.Assignee
		if err := rows.Scan(
			&assignee.ID,
			&assignee.RoleName,
			&assignee.MemberName,
			&assignee.MemberAge,
			&assignee.MemberDepartment,
			&assignee.MemberAvatar,
		); err != nil {
			return nil, err
		}
		assignees = append(assignees, assignee)
	}
	if len(assignees) == 0 {
		return nil, rows.Err()
	}
	return assignees, rows.Err()
}

// --- AnnouncementRepository implementation ---

// CreateAnnouncement inserts a new announcement.
func (s *Storage) CreateAnnouncement(ctx context.Context, announcement persistence.Announcement) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO announcements (id, title, content, publish_at, is_auto)
		VALUES (?, ?, ?, ?, ?)
	`,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		announcement.PublishAt.UTC().Format(time.RFC3339Nano),
		boolToInt(announcement.IsAuto),
	)
	return mapError(err)
}

// ListAnnouncements returns announcements newest first.
func (s *Storage) ListAnnouncements(ctx context.Context) ([]persistence.Announcement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, publish_at, is_auto
		FROM announcements ORDER BY publish_at DESC, id DESC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	announcements := make([]persistence.Announcement, 0)
	for rows.Next() {
		var (
			announcement persistence.Announcement
			publishAt    string
			isAuto       int
		)
		if err := rows.Scan(&announcement.ID, &announcement.Title, &announcement.Content, &publishAt, &isAuto); err != nil {
			return nil, err
		}
		announcement.PublishAt, err = parseTime(publishAt)
		if err != nil {
			return nil, err
		}
		announcement.IsAuto = isAuto != 0
		announcements = append(announcements, announcement)
	}
	return announcements, rows.Err()
}

// DeleteAnnouncement removes an announcement by ID.
func (s *Storage) DeleteAnnouncement(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = ?", id)
	if err != nil {
		return mapError(err)
	}
	return requireRowAffected(result)
}

// --- Helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (persistence.Plan, error) {
	var (
		plan                                 persistence.Plan
		startDate, endDate, created, updated string
	)
	if err := row.Scan(&plan.ID, &plan.Name, &plan.Type, &startDate, &endDate, &created, &updated); err != nil {
		return persistence.Plan{}, mapError(err)
	}

	var err error
	if plan.StartDate, err = parseTime(startDate); err != nil {
		return persistence.Plan{}, err
	}
	if plan.EndDate, err = parseTime(endDate); err != nil {
		return persistence.Plan{}, err
	}
	if plan.CreatedAt, err = parseTime(created); err != nil {
		return persistence.Plan{}, err
	}
	if plan.UpdatedAt, err = parseTime(updated); err != nil {
		return persistence.Plan{}, err
	}
	return plan, nil
}

func scanSchedule(row rowScanner) (persistence.Schedule, error) {
	var (
		schedule               persistence.Schedule
		date, created, updated string
		description, location  sql.NullString
		poster                 sql.NullString
	)
	if err := row.Scan(
		&schedule.ID,
		&schedule.Title,
		&date,
		&description,
		&location,
		&schedule.Status,
		&poster,
		&created,
		&updated,
	); err != nil {
		return persistence.Schedule{}, mapError(err)
	}

	var err error
	if schedule.Date, err = parseTime(date); err != nil {
		return persistence.Schedule{}, err
	}
	if schedule.CreatedAt, err = parseTime(created); err != nil {
		return persistence.Schedule{}, err
	}
	if schedule.UpdatedAt, err = parseTime(updated); err != nil {
		return persistence.Schedule{}, err
	}
	if description.Valid {
		value := description.String
		schedule.Description = &value
	}
	if location.Valid {
		value := location.String
		schedule.Location = &value
	}
	if poster.Valid {
		schedule.Poster = []byte(poster.String)
	}
	return schedule, nil
}

func parseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullBytes(value []byte) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(value), Valid: true}
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
