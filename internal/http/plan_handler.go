package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/schedule-studio/internal/application"
)

type planService interface {
	CreatePlan(ctx context.Context, input application.PlanInput) (application.Plan, error)
	UpdatePlan(ctx context.Context, planID string, input application.PlanInput) (application.Plan, bool, error)
	GetPlan(ctx context.Context, planID string) (application.Plan, error)
	ListPlans(ctx context.Context) ([]application.Plan, error)
	DeletePlan(ctx context.Context, planID string) error
}

type PlanHandler struct {
	service   planService
	responder responder
}

func NewPlanHandler(service planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{service: service, responder: newResponder(logger)}
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toPlanDTO(plan))
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	planID, ok := PlanIDFromContext(r.Context())
	if !ok || strings.TrimSpace(planID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPlanID)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	plan, found, err := h.service.UpdatePlan(r.Context(), planID, req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	if !found {
		h.responder.writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Message: "the requested resource was not found"})
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toPlanDTO(plan))
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	planID, ok := PlanIDFromContext(r.Context())
	if !ok || strings.TrimSpace(planID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPlanID)
		return
	}

	plan, err := h.service.GetPlan(r.Context(), planID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toPlanDTO(plan))
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	planID, ok := PlanIDFromContext(r.Context())
	if !ok || strings.TrimSpace(planID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPlanID)
		return
	}

	if err := h.service.DeletePlan(r.Context(), planID); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPlansResponse{Plans: toPlanDTOs(plans)})
}

type planRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r planRequest) toInput() application.PlanInput {
	return application.PlanInput{
		Name:      strings.TrimSpace(r.Name),
		Type:      application.PlanType(strings.TrimSpace(r.Type)),
		StartDate: parseTime(r.StartDate),
		EndDate:   parseTime(r.EndDate),
	}
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts
	}
	return time.Time{}
}

type listPlansResponse struct {
	Plans []planDTO `json:"plans"`
}

type planDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toPlanDTO(plan application.Plan) planDTO {
	return planDTO{
		ID:        plan.ID,
		Name:      plan.Name,
		Type:      string(plan.Type),
		StartDate: plan.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:   plan.EndDate.UTC().Format(time.RFC3339Nano),
		CreatedAt: plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toPlanDTOs(plans []application.Plan) []planDTO {
	if len(plans) == 0 {
		return nil
	}
	out := make([]planDTO, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanDTO(plan))
	}
	return out
}
