package testfixtures

import (
	"path/filepath"
	"testing"

	"github.com/example/schedule-studio/internal/persistence"
	"github.com/example/schedule-studio/internal/persistence/sqlite"
)

// SQLiteHarness provides repository access backed by a temporary SQLite
// storage instance for integration-style persistence tests.
type SQLiteHarness struct {
	Plans         persistence.PlanRepository
	Schedules     persistence.ScheduleRepository
	Announcements persistence.AnnouncementRepository

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary database file.
// Opening the storage applies the schema, so the harness is ready for use
// immediately. Callers may optionally invoke Close, but the helper also
// registers a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "studio.db")

	storage, err := sqlite.Open(path)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	harness := &SQLiteHarness{
		Plans:         storage,
		Schedules:     storage,
		Announcements: storage,
		cleanup: func() {
			_ = storage.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
