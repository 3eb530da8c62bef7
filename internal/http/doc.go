// Package http provides HTTP handlers and middleware for the studio API.
//
// The router exposes the following endpoints:
//   - GET /plans, POST /plans, PUT /plans/{id}, DELETE /plans/{id}: plan
//     management endpoints exchanging the `planDTO` payload defined in
//     plan_handler.go. Creating a plan also publishes an automatic
//     announcement.
//   - GET /schedules, POST /schedules, GET /schedules/{id}, PUT
//     /schedules/{id}, DELETE /schedules/{id}: schedule management endpoints
//     exchanging the `scheduleDTO` payload defined in schedule_handler.go.
//     Listing accepts an optional `status` query parameter.
//   - GET /schedules/export: downloads the full schedule list as an Excel
//     workbook.
//   - POST /schedules/{id}/poster/session: opens a poster editing session
//     seeded from the schedule's saved poster document.
//   - GET /poster/sessions/{token}: returns the session's working copy.
//   - PUT /poster/sessions/{token}/settings, PUT
//     /poster/sessions/{token}/image, PUT /poster/sessions/{token}/zoom,
//     PUT /poster/sessions/{token}/preset: mutate the working copy without
//     touching the schedule.
//   - GET /poster/presets: returns the built-in aspect ratio, gradient,
//     layout, filter, overlay, style and typography tables.
//   - POST /poster/sessions/{token}/apply, POST
//     /poster/sessions/{token}/cancel: write the working copy back to the
//     schedule, or discard it. Both close the session.
//   - POST /poster/sessions/{token}/export: renders the working copy and
//     returns the PNG as an attachment. The session stays open.
//   - GET /announcements, POST /announcements, DELETE /announcements/{id}:
//     announcement endpoints exchanging the `announcementDTO` payload defined
//     in announcement_handler.go.
//   - GET /reminders: returns the most recent reminder evaluation snapshot.
//   - GET /members: returns the member directory used to bind assignees.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
