package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/schedule-studio/internal/application"
	"github.com/example/schedule-studio/internal/poster"
	"github.com/example/schedule-studio/internal/poster/render"
	"github.com/example/schedule-studio/internal/testfixtures"
)

type stubPlanService struct {
	plan      application.Plan
	plans     []application.Plan
	found     bool
	err       error
	lastID    string
	lastInput application.PlanInput
}

func (s *stubPlanService) CreatePlan(ctx context.Context, input application.PlanInput) (application.Plan, error) {
	s.lastInput = input
	return s.plan, s.err
}

func (s *stubPlanService) UpdatePlan(ctx context.Context, planID string, input application.PlanInput) (application.Plan, bool, error) {
	s.lastID = planID
	s.lastInput = input
	return s.plan, s.found, s.err
}

func (s *stubPlanService) GetPlan(ctx context.Context, planID string) (application.Plan, error) {
	s.lastID = planID
	return s.plan, s.err
}

func (s *stubPlanService) ListPlans(ctx context.Context) ([]application.Plan, error) {
	return s.plans, s.err
}

func (s *stubPlanService) DeletePlan(ctx context.Context, planID string) error {
	s.lastID = planID
	return s.err
}

type stubScheduleService struct {
	schedule  application.Schedule
	schedules []application.Schedule
	found     bool
	err       error
	lastID    string
}

func (s *stubScheduleService) CreateSchedule(ctx context.Context, input application.ScheduleInput) (application.Schedule, error) {
	return s.schedule, s.err
}

func (s *stubScheduleService) UpdateSchedule(ctx context.Context, scheduleID string, input application.ScheduleInput) (application.Schedule, bool, error) {
	s.lastID = scheduleID
	return s.schedule, s.found, s.err
}

func (s *stubScheduleService) GetSchedule(ctx context.Context, scheduleID string) (application.Schedule, error) {
	s.lastID = scheduleID
	return s.schedule, s.err
}

func (s *stubScheduleService) ListSchedules(ctx context.Context) ([]application.Schedule, error) {
	return s.schedules, s.err
}

func (s *stubScheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	s.lastID = scheduleID
	return s.err
}

type stubAnnouncementService struct {
	announcement  application.Announcement
	announcements []application.Announcement
	err           error
	lastID        string
}

func (s *stubAnnouncementService) Publish(ctx context.Context, input application.AnnouncementInput) (application.Announcement, error) {
	return s.announcement, s.err
}

func (s *stubAnnouncementService) List(ctx context.Context) ([]application.Announcement, error) {
	return s.announcements, s.err
}

func (s *stubAnnouncementService) Delete(ctx context.Context, announcementID string) error {
	s.lastID = announcementID
	return s.err
}

type stubReminderSource struct {
	reminders []application.Reminder
}

func (s *stubReminderSource) Current() []application.Reminder {
	return s.reminders
}

type stubPosterEditor struct {
	session application.EditorSession
	export  render.Export
	err     error
	lastOp  string
}

func (s *stubPosterEditor) Open(ctx context.Context, scheduleID string) (application.EditorSession, error) {
	s.lastOp = "open:" + scheduleID
	return s.session, s.err
}

func (s *stubPosterEditor) Get(token string) (application.EditorSession, error) {
	s.lastOp = "get:" + token
	return s.session, s.err
}

func (s *stubPosterEditor) UpdateSettings(ctx context.Context, token string, data poster.Data) (application.EditorSession, error) {
	s.lastOp = "settings:" + token
	return s.session, s.err
}

func (s *stubPosterEditor) SetImage(ctx context.Context, token, dataURL string) (application.EditorSession, error) {
	s.lastOp = "image:" + token
	return s.session, s.err
}

func (s *stubPosterEditor) SetZoom(token string, zoom int) (application.EditorSession, error) {
	s.lastOp = "zoom:" + token
	return s.session, s.err
}

func (s *stubPosterEditor) ApplyPreset(ctx context.Context, token, kind, name string) (application.EditorSession, error) {
	s.lastOp = "preset:" + token + ":" + kind + ":" + name
	return s.session, s.err
}

func (s *stubPosterEditor) Apply(ctx context.Context, token string) error {
	s.lastOp = "apply:" + token
	return s.err
}

func (s *stubPosterEditor) Cancel(ctx context.Context, token string) error {
	s.lastOp = "cancel:" + token
	return s.err
}

func (s *stubPosterEditor) Export(ctx context.Context, token string) (render.Export, error) {
	s.lastOp = "export:" + token
	return s.export, s.err
}

type routerStubs struct {
	plans         *stubPlanService
	schedules     *stubScheduleService
	announcements *stubAnnouncementService
	reminders     *stubReminderSource
	editor        *stubPosterEditor
}

func newTestRouter() (http.Handler, *routerStubs) {
	stubs := &routerStubs{
		plans:         &stubPlanService{},
		schedules:     &stubScheduleService{},
		announcements: &stubAnnouncementService{},
		reminders:     &stubReminderSource{},
		editor:        &stubPosterEditor{},
	}
	router := NewRouter(RouterConfig{
		Plans:         NewPlanHandler(stubs.plans, nil),
		Schedules:     NewScheduleHandler(stubs.schedules, nil),
		Announcements: NewAnnouncementHandler(stubs.announcements, nil),
		Reminders:     NewReminderHandler(stubs.reminders, nil),
		Members:       NewMemberHandler(application.NewMemberDirectory(), nil),
		Poster:        NewPosterHandler(stubs.editor, nil),
		Presets:       NewPresetHandler(nil),
		Exports:       NewExportHandler(stubs.schedules, nil),
	})
	return router, stubs
}

func TestCreatePlanReturnsCreated(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.plans.plan = testfixtures.NewPlanFixture(testfixtures.WithPlanID("plan-1700000000000"))

	body := `{"name":"Spring Payroll","type":"payroll","start_date":"2026-05-04T00:00:00Z","end_date":"2026-05-07T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var dto planDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if dto.ID != "plan-1700000000000" {
		t.Fatalf("unexpected plan id %q", dto.ID)
	}
	if stubs.plans.lastInput.Type != application.PlanTypePayroll {
		t.Fatalf("unexpected input type %q", stubs.plans.lastInput.Type)
	}
}

func TestCreatePlanValidationFailure(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.plans.err = &application.ValidationError{FieldErrors: map[string]string{"name": "name is required"}}

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Errors["name"] != "name is required" {
		t.Fatalf("expected field error, got %+v", resp.Errors)
	}
}

func TestUpdatePlanMissingReturnsNotFound(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.plans.found = false

	body := `{"name":"Renamed","type":"event","start_date":"2026-05-04T00:00:00Z","end_date":"2026-05-07T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/plans/plan-missing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if stubs.plans.lastID != "plan-missing" {
		t.Fatalf("path id not propagated, got %q", stubs.plans.lastID)
	}
}

func TestBadRequestBody(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListSchedulesStatusFilter(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.schedules.schedules = []application.Schedule{
		testfixtures.NewScheduleFixture(testfixtures.WithScheduleStatus(application.StatusPending)),
		testfixtures.NewScheduleFixture(testfixtures.WithScheduleStatus(application.StatusCompleted)),
	}

	req := httptest.NewRequest(http.MethodGet, "/schedules?status=completed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp listSchedulesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Schedules) != 1 || resp.Schedules[0].Status != "completed" {
		t.Fatalf("unexpected filter result: %+v", resp.Schedules)
	}
}

func TestDeleteScheduleReturnsNoContent(t *testing.T) {
	router, stubs := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/schedules/sched-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stubs.schedules.lastID != "sched-1" {
		t.Fatalf("path id not propagated, got %q", stubs.schedules.lastID)
	}
}

func TestGetScheduleNotFound(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.schedules.err = application.ErrNotFound

	req := httptest.NewRequest(http.MethodGet, "/schedules/sched-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAnnouncementEndpoints(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.announcements.announcement = testfixtures.NewAnnouncementFixture(testfixtures.WithAnnouncementID("announ-1"))

	req := httptest.NewRequest(http.MethodPost, "/announcements", strings.NewReader(`{"title":"Notice","content":"Body"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/announcements/announ-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stubs.announcements.lastID != "announ-1" {
		t.Fatalf("path id not propagated, got %q", stubs.announcements.lastID)
	}
}

func TestRemindersEndpoint(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.reminders.reminders = []application.Reminder{
		{Kind: "plan", RefID: "plan-1", Message: `Plan "Maintenance Window" starts 7/1/2026`},
	}

	req := httptest.NewRequest(http.MethodGet, "/reminders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp listRemindersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Reminders) != 1 || resp.Reminders[0].RefID != "plan-1" {
		t.Fatalf("unexpected reminders: %+v", resp.Reminders)
	}
}

func TestMembersEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp listMembersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Members) == 0 {
		t.Fatal("expected a non-empty member directory")
	}
}

func TestPosterSessionLifecycle(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.editor.session = application.EditorSession{
		Token:      "session-1",
		ScheduleID: "sched-1",
		Data:       poster.DefaultData(),
		Zoom:       100,
	}

	req := httptest.NewRequest(http.MethodPost, "/schedules/sched-1/poster/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stubs.editor.lastOp != "open:sched-1" {
		t.Fatalf("unexpected editor call %q", stubs.editor.lastOp)
	}

	req = httptest.NewRequest(http.MethodPut, "/poster/sessions/session-1/zoom", strings.NewReader(`{"zoom":150}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stubs.editor.lastOp != "zoom:session-1" {
		t.Fatalf("unexpected editor call %q", stubs.editor.lastOp)
	}

	req = httptest.NewRequest(http.MethodPost, "/poster/sessions/session-1/apply", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestPosterApplyPresetEndpoint(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.editor.session = application.EditorSession{Token: "session-1", ScheduleID: "sched-1", Data: poster.DefaultData(), Zoom: 100}

	req := httptest.NewRequest(http.MethodPut, "/poster/sessions/session-1/preset", strings.NewReader(`{"kind":"layout","name":"magazine"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stubs.editor.lastOp != "preset:session-1:layout:magazine" {
		t.Fatalf("unexpected editor call %q", stubs.editor.lastOp)
	}
}

func TestPresetCatalogEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/poster/presets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var catalog presetCatalogDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(catalog.AspectRatios) != 6 {
		t.Fatalf("expected 6 aspect ratios, got %d", len(catalog.AspectRatios))
	}
	if len(catalog.Gradients) != len(poster.GradientPresets) {
		t.Fatalf("expected %d gradients, got %d", len(poster.GradientPresets), len(catalog.Gradients))
	}
	if len(catalog.Layouts) != len(poster.LayoutPresets) || len(catalog.Styles) != len(poster.StylePresets) {
		t.Fatalf("layout/style tables incomplete: %d layouts, %d styles", len(catalog.Layouts), len(catalog.Styles))
	}
	if catalog.Shadows.Title == "" || catalog.Shadows.Subtle == "" {
		t.Fatalf("shadow presets missing: %+v", catalog.Shadows)
	}
	if catalog.Zoom.Min != 25 || catalog.Zoom.Max != 200 || catalog.Zoom.Step != 25 || catalog.Zoom.Reset != 100 {
		t.Fatalf("unexpected zoom bounds: %+v", catalog.Zoom)
	}
}

func TestPosterExportStreamsAttachment(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.editor.export = render.Export{Filename: "Town-Hall-Schedule.png", Data: []byte{0x89, 'P', 'N', 'G'}}

	req := httptest.NewRequest(http.MethodPost, "/poster/sessions/session-1/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "Town-Hall-Schedule.png") {
		t.Fatalf("unexpected disposition %q", got)
	}
}

func TestPosterExportBusyReturnsConflict(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.editor.err = application.ErrExportBusy

	req := httptest.NewRequest(http.MethodPost, "/poster/sessions/session-1/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ErrorCode != "EXPORT_IN_PROGRESS" {
		t.Fatalf("unexpected error code %q", resp.ErrorCode)
	}
}

func TestScheduleWorkbookExport(t *testing.T) {
	router, stubs := newTestRouter()
	stubs.schedules.schedules = []application.Schedule{
		testfixtures.NewScheduleFixture(testfixtures.WithScheduleDate(time.Date(2026, time.June, 12, 15, 30, 0, 0, time.UTC))),
	}

	req := httptest.NewRequest(http.MethodGet, "/schedules/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected a non-empty workbook body")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); !strings.Contains(allow, http.MethodPost) {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}
