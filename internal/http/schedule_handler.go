package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/schedule-studio/internal/application"
	"github.com/example/schedule-studio/internal/poster"
)

type scheduleService interface {
	CreateSchedule(ctx context.Context, input application.ScheduleInput) (application.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID string, input application.ScheduleInput) (application.Schedule, bool, error)
	GetSchedule(ctx context.Context, scheduleID string) (application.Schedule, error)
	ListSchedules(ctx context.Context) ([]application.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, responder: newResponder(logger)}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	schedule, err := h.service.CreateSchedule(r.Context(), req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toScheduleDTO(schedule))
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scheduleID, ok := ScheduleIDFromContext(r.Context())
	if !ok || strings.TrimSpace(scheduleID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	schedule, found, err := h.service.UpdateSchedule(r.Context(), scheduleID, req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	if !found {
		h.responder.writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Message: "the requested resource was not found"})
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTO(schedule))
}

func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scheduleID, ok := ScheduleIDFromContext(r.Context())
	if !ok || strings.TrimSpace(scheduleID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	schedule, err := h.service.GetSchedule(r.Context(), scheduleID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTO(schedule))
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scheduleID, ok := ScheduleIDFromContext(r.Context())
	if !ok || strings.TrimSpace(scheduleID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), scheduleID); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	schedules, err := h.service.ListSchedules(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		want := application.NormalizeStatus(application.ScheduleStatus(status))
		filtered := schedules[:0]
		for _, schedule := range schedules {
			if schedule.Status == want {
				filtered = append(filtered, schedule)
			}
		}
		schedules = filtered
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listSchedulesResponse{Schedules: toScheduleDTOs(schedules)})
}

type scheduleRequest struct {
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Status      string        `json:"status"`
	Assignees   []assigneeDTO `json:"assignees"`
	Poster      *poster.Data  `json:"poster"`
}

func (r scheduleRequest) toInput() application.ScheduleInput {
	return application.ScheduleInput{
		Title:       strings.TrimSpace(r.Title),
		Date:        parseTime(r.Date),
		Description: r.Description,
		Location:    strings.TrimSpace(r.Location),
		Status:      application.ScheduleStatus(strings.TrimSpace(r.Status)),
		Assignees:   fromAssigneeDTOs(r.Assignees),
		Poster:      r.Poster,
	}
}

type listSchedulesResponse struct {
	Schedules []scheduleDTO `json:"schedules"`
}

type scheduleDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Status      string        `json:"status"`
	Assignees   []assigneeDTO `json:"assignees"`
	Poster      *poster.Data  `json:"poster,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

func toScheduleDTO(schedule application.Schedule) scheduleDTO {
	return scheduleDTO{
		ID:          schedule.ID,
		Title:       schedule.Title,
		Date:        schedule.Date.UTC().Format(time.RFC3339Nano),
		Description: schedule.Description,
		Location:    schedule.Location,
		Status:      string(schedule.Status),
		Assignees:   toAssigneeDTOs(schedule.Assignees),
		Poster:      schedule.Poster,
		CreatedAt:   schedule.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   schedule.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toScheduleDTOs(schedules []application.Schedule) []scheduleDTO {
	if len(schedules) == 0 {
		return nil
	}
	out := make([]scheduleDTO, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, toScheduleDTO(schedule))
	}
	return out
}

type assigneeDTO struct {
	ID       string     `json:"id"`
	RoleName string     `json:"role_name"`
	Member   *memberDTO `json:"member,omitempty"`
}

type memberDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age,omitempty"`
	Department string `json:"department,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

func toAssigneeDTOs(assignees []application.Assignee) []assigneeDTO {
	if len(assignees) == 0 {
		return nil
	}
	out := make([]assigneeDTO, 0, len(assignees))
	for _, assignee := range assignees {
		dto := assigneeDTO{ID: assignee.ID, RoleName: assignee.RoleName}
		if assignee.Member != nil {
			member := toMemberDTO(*assignee.Member)
			dto.Member = &member
		}
		out = append(out, dto)
	}
	return out
}

func fromAssigneeDTOs(dtos []assigneeDTO) []application.Assignee {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]application.Assignee, 0, len(dtos))
	for _, dto := range dtos {
		assignee := application.Assignee{ID: dto.ID, RoleName: strings.TrimSpace(dto.RoleName)}
		if dto.Member != nil {
			assignee.Member = &application.Member{
				ID:         dto.Member.ID,
				Name:       strings.TrimSpace(dto.Member.Name),
				Age:        dto.Member.Age,
				Department: dto.Member.Department,
				Avatar:     dto.Member.Avatar,
			}
		}
		out = append(out, assignee)
	}
	return out
}

func toMemberDTO(member application.Member) memberDTO {
	return memberDTO{
		ID:         member.ID,
		Name:       member.Name,
		Age:        member.Age,
		Department: member.Department,
		Avatar:     member.Avatar,
	}
}
