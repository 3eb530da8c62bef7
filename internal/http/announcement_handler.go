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

type announcementService interface {
	Publish(ctx context.Context, input application.AnnouncementInput) (application.Announcement, error)
	List(ctx context.Context) ([]application.Announcement, error)
	Delete(ctx context.Context, announcementID string) error
}

type AnnouncementHandler struct {
	service   announcementService
	responder responder
}

func NewAnnouncementHandler(service announcementService, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, responder: newResponder(logger)}
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	announcement, err := h.service.Publish(r.Context(), application.AnnouncementInput{
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toAnnouncementDTO(announcement))
}

func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	announcementID, ok := AnnouncementIDFromContext(r.Context())
	if !ok || strings.TrimSpace(announcementID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidAnnouncementID)
		return
	}

	if err := h.service.Delete(r.Context(), announcementID); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	announcements, err := h.service.List(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAnnouncementsResponse{Announcements: toAnnouncementDTOs(announcements)})
}

type announcementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type listAnnouncementsResponse struct {
	Announcements []announcementDTO `json:"announcements"`
}

type announcementDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	PublishAt string `json:"publish_at"`
	IsAuto    bool   `json:"is_auto"`
}

func toAnnouncementDTO(announcement application.Announcement) announcementDTO {
	return announcementDTO{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		PublishAt: announcement.PublishAt.UTC().Format(time.RFC3339Nano),
		IsAuto:    announcement.IsAuto,
	}
}

func toAnnouncementDTOs(announcements []application.Announcement) []announcementDTO {
	if len(announcements) == 0 {
		return nil
	}
	out := make([]announcementDTO, 0, len(announcements))
	for _, announcement := range announcements {
		out = append(out, toAnnouncementDTO(announcement))
	}
	return out
}
