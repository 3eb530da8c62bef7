package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/schedule-studio/internal/application"
	"github.com/example/schedule-studio/internal/config"
	httptransport "github.com/example/schedule-studio/internal/http"
	"github.com/example/schedule-studio/internal/persistence"
	"github.com/example/schedule-studio/internal/persistence/memory"
	"github.com/example/schedule-studio/internal/persistence/sqlite"
	"github.com/example/schedule-studio/internal/poster"
	"github.com/example/schedule-studio/internal/poster/render"
)

// storageBackend is the union of repositories a storage implementation
// provides. Both the in-memory store and the SQLite storage satisfy it.
type storageBackend interface {
	persistence.PlanRepository
	persistence.ScheduleRepository
	persistence.AnnouncementRepository
	Close() error
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := openStorage(cfg)
	if err != nil {
		logger.Error("failed to open storage", "error", err, "backend", cfg.Storage)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Error("failed to initialise poster renderer", "error", err)
		os.Exit(1)
	}
	renderer.SetMaxImageBytes(cfg.MaxUploadBytes)

	now := time.Now

	planRepo := newPlanRepositoryAdapter(storage)
	scheduleRepo := newScheduleRepositoryAdapter(storage)
	announcementRepo := newAnnouncementRepositoryAdapter(storage)

	announcementService := application.NewAnnouncementServiceWithLogger(announcementRepo, application.NewAnnouncementIDGenerator(now), now, logger)
	planService := application.NewPlanServiceWithLogger(planRepo, announcementService, application.NewPlanIDGenerator(now), now, logger)
	scheduleService := application.NewScheduleServiceWithLogger(scheduleRepo, announcementService, application.NewScheduleIDGenerator(now), now, logger)
	reminderService := application.NewReminderServiceWithLogger(planRepo, scheduleRepo, logger)
	editorService := application.NewEditorServiceWithLogger(scheduleService, renderer, nil, logger)
	memberDirectory := application.NewMemberDirectory()

	go reminderService.Run(ctx, cfg.ReminderInterval, now)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Plans:         httptransport.NewPlanHandler(planService, logger),
		Schedules:     httptransport.NewScheduleHandler(scheduleService, logger),
		Announcements: httptransport.NewAnnouncementHandler(announcementService, logger),
		Reminders:     httptransport.NewReminderHandler(reminderService, logger),
		Members:       httptransport.NewMemberHandler(memberDirectory, logger),
		Poster:        httptransport.NewPosterHandler(editorService, logger),
		Presets:       httptransport.NewPresetHandler(logger),
		Exports:       httptransport.NewExportHandler(scheduleService, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("studio API listening", "addr", server.Addr, "storage", cfg.Storage)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

func openStorage(cfg config.Config) (storageBackend, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return sqlite.Open(cfg.SQLiteDSN)
	default:
		return memory.NewStore(), nil
	}
}

type planRepositoryAdapter struct {
	repo persistence.PlanRepository
}

func newPlanRepositoryAdapter(repo persistence.PlanRepository) *planRepositoryAdapter {
	return &planRepositoryAdapter{repo: repo}
}

func (a *planRepositoryAdapter) CreatePlan(ctx context.Context, plan application.Plan) error {
	return a.repo.CreatePlan(ctx, toPersistencePlan(plan))
}

func (a *planRepositoryAdapter) UpdatePlan(ctx context.Context, plan application.Plan) error {
	return a.repo.UpdatePlan(ctx, toPersistencePlan(plan))
}

func (a *planRepositoryAdapter) GetPlan(ctx context.Context, id string) (application.Plan, error) {
	stored, err := a.repo.GetPlan(ctx, id)
	if err != nil {
		return application.Plan{}, err
	}
	return toApplicationPlan(stored), nil
}

func (a *planRepositoryAdapter) ListPlans(ctx context.Context) ([]application.Plan, error) {
	models, err := a.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	plans := make([]application.Plan, 0, len(models))
	for _, model := range models {
		plans = append(plans, toApplicationPlan(model))
	}
	return plans, nil
}

func (a *planRepositoryAdapter) DeletePlan(ctx context.Context, id string) error {
	return a.repo.DeletePlan(ctx, id)
}

type scheduleRepositoryAdapter struct {
	repo persistence.ScheduleRepository
}

func newScheduleRepositoryAdapter(repo persistence.ScheduleRepository) *scheduleRepositoryAdapter {
	return &scheduleRepositoryAdapter{repo: repo}
}

func (a *scheduleRepositoryAdapter) CreateSchedule(ctx context.Context, schedule application.Schedule) error {
	model, err := toPersistenceSchedule(schedule)
	if err != nil {
		return err
	}
	return a.repo.CreateSchedule(ctx, model)
}

func (a *scheduleRepositoryAdapter) UpdateSchedule(ctx context.Context, schedule application.Schedule) error {
	model, err := toPersistenceSchedule(schedule)
	if err != nil {
		return err
	}
	return a.repo.UpdateSchedule(ctx, model)
}

func (a *scheduleRepositoryAdapter) GetSchedule(ctx context.Context, id string) (application.Schedule, error) {
	stored, err := a.repo.GetSchedule(ctx, id)
	if err != nil {
		return application.Schedule{}, err
	}
	return toApplicationSchedule(stored)
}

func (a *scheduleRepositoryAdapter) ListSchedules(ctx context.Context) ([]application.Schedule, error) {
	models, err := a.repo.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	schedules := make([]application.Schedule, 0, len(models))
	for _, model := range models {
		schedule, err := toApplicationSchedule(model)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

func (a *scheduleRepositoryAdapter) DeleteSchedule(ctx context.Context, id string) error {
	return a.repo.DeleteSchedule(ctx, id)
}

type announcementRepositoryAdapter struct {
	repo persistence.AnnouncementRepository
}

func newAnnouncementRepositoryAdapter(repo persistence.AnnouncementRepository) *announcementRepositoryAdapter {
	return &announcementRepositoryAdapter{repo: repo}
}

func (a *announcementRepositoryAdapter) CreateAnnouncement(ctx context.Context, announcement application.Announcement) error {
	return a.repo.CreateAnnouncement(ctx, persistence.Announcement{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		PublishAt: announcement.PublishAt,
		IsAuto:    announcement.IsAuto,
	})
}

func (a *announcementRepositoryAdapter) ListAnnouncements(ctx context.Context) ([]application.Announcement, error) {
	models, err := a.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	announcements := make([]application.Announcement, 0, len(models))
	for _, model := range models {
		announcements = append(announcements, application.Announcement{
			ID:        model.ID,
			Title:     model.Title,
			Content:   model.Content,
			PublishAt: model.PublishAt,
			IsAuto:    model.IsAuto,
		})
	}
	return announcements, nil
}

func (a *announcementRepositoryAdapter) DeleteAnnouncement(ctx context.Context, id string) error {
	return a.repo.DeleteAnnouncement(ctx, id)
}

func toPersistencePlan(plan application.Plan) persistence.Plan {
	return persistence.Plan{
		ID:        plan.ID,
		Name:      plan.Name,
		Type:      string(plan.Type),
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

func toApplicationPlan(model persistence.Plan) application.Plan {
	return application.Plan{
		ID:        model.ID,
		Name:      model.Name,
		Type:      application.PlanType(model.Type),
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toPersistenceSchedule(schedule application.Schedule) (persistence.Schedule, error) {
	model := persistence.Schedule{
		ID:        schedule.ID,
		Title:     schedule.Title,
		Date:      schedule.Date,
		Status:    string(schedule.Status),
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}
	if schedule.Description != "" {
		description := schedule.Description
		model.Description = &description
	}
	if schedule.Location != "" {
		location := schedule.Location
		model.Location = &location
	}
	if len(schedule.Assignees) > 0 {
		model.Assignees = make([]persistence.Assignee, 0, len(schedule.Assignees))
		for _, assignee := range schedule.Assignees {
			row := persistence.Assignee{ID: assignee.ID, RoleName: assignee.RoleName}
			if assignee.Member != nil {
				row.MemberName = assignee.Member.Name
				row.MemberAge = assignee.Member.Age
				row.MemberDepartment = assignee.Member.Department
				row.MemberAvatar = assignee.Member.Avatar
			}
			model.Assignees = append(model.Assignees, row)
		}
	}
	if schedule.Poster != nil {
		payload, err := json.Marshal(schedule.Poster)
		if err != nil {
			return persistence.Schedule{}, fmt.Errorf("marshal poster: %w", err)
		}
		model.Poster = payload
	}
	return model, nil
}

func toApplicationSchedule(model persistence.Schedule) (application.Schedule, error) {
	schedule := application.Schedule{
		ID:        model.ID,
		Title:     model.Title,
		Date:      model.Date,
		Status:    application.NormalizeStatus(application.ScheduleStatus(model.Status)),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Description != nil {
		schedule.Description = *model.Description
	}
	if model.Location != nil {
		schedule.Location = *model.Location
	}
	if len(model.Assignees) > 0 {
		schedule.Assignees = make([]application.Assignee, 0, len(model.Assignees))
		for _, row := range model.Assignees {
			assignee := application.Assignee{ID: row.ID, RoleName: row.RoleName}
			if row.MemberName != "" {
				assignee.Member = &application.Member{
					Name:       row.MemberName,
					Age:        row.MemberAge,
					Department: row.MemberDepartment,
					Avatar:     row.MemberAvatar,
				}
			}
			schedule.Assignees = append(schedule.Assignees, assignee)
		}
	}
	if len(model.Poster) > 0 {
		var data poster.Data
		if err := json.Unmarshal(model.Poster, &data); err != nil {
			return application.Schedule{}, fmt.Errorf("unmarshal poster: %w", err)
		}
		schedule.Poster = &data
	}
	return schedule, nil
}
