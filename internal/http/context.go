package http

import (
	"context"
	"log/slog"

	"github.com/example/schedule-studio/internal/logging"
)

type contextKey string

const (
	planIDContextKey         contextKey = "plan_id"
	scheduleIDContextKey     contextKey = "schedule_id"
	announcementIDContextKey contextKey = "announcement_id"
	sessionTokenContextKey   contextKey = "session_token"
)

// ContextWithPlanID injects the plan identifier resolved from the request path.
func ContextWithPlanID(ctx context.Context, planID string) context.Context {
	return context.WithValue(ctx, planIDContextKey, planID)
}

// PlanIDFromContext extracts a plan identifier previously associated with the context.
func PlanIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(planIDContextKey).(string)
	return id, ok
}

// ContextWithScheduleID injects the schedule identifier resolved from the request path.
func ContextWithScheduleID(ctx context.Context, scheduleID string) context.Context {
	return context.WithValue(ctx, scheduleIDContextKey, scheduleID)
}

// ScheduleIDFromContext extracts a schedule identifier previously associated with the context.
func ScheduleIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(scheduleIDContextKey).(string)
	return id, ok
}

// ContextWithAnnouncementID injects the announcement identifier resolved from the request path.
func ContextWithAnnouncementID(ctx context.Context, announcementID string) context.Context {
	return context.WithValue(ctx, announcementIDContextKey, announcementID)
}

// AnnouncementIDFromContext extracts an announcement identifier previously associated with the context.
func AnnouncementIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(announcementIDContextKey).(string)
	return id, ok
}

// ContextWithSessionToken injects the editor session token resolved from the request path.
func ContextWithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenContextKey, token)
}

// SessionTokenFromContext extracts an editor session token previously associated with the context.
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenContextKey).(string)
	return token, ok
}

// ContextWithLogger attaches a request-scoped logger to the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext extracts the request-scoped logger if one is attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
