package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/schedule-studio/internal/application"
	"github.com/example/schedule-studio/internal/poster"
	"github.com/example/schedule-studio/internal/poster/render"
)

type posterEditor interface {
	Open(ctx context.Context, scheduleID string) (application.EditorSession, error)
	Get(token string) (application.EditorSession, error)
	UpdateSettings(ctx context.Context, token string, data poster.Data) (application.EditorSession, error)
	SetImage(ctx context.Context, token, dataURL string) (application.EditorSession, error)
	SetZoom(token string, zoom int) (application.EditorSession, error)
	ApplyPreset(ctx context.Context, token, kind, name string) (application.EditorSession, error)
	Apply(ctx context.Context, token string) error
	Cancel(ctx context.Context, token string) error
	Export(ctx context.Context, token string) (render.Export, error)
}

type PosterHandler struct {
	editor    posterEditor
	responder responder
}

func NewPosterHandler(editor posterEditor, logger *slog.Logger) *PosterHandler {
	return &PosterHandler{editor: editor, responder: newResponder(logger)}
}

// OpenSession starts an editing session for the schedule named in the path.
func (h *PosterHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.editor == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scheduleID, ok := ScheduleIDFromContext(r.Context())
	if !ok || strings.TrimSpace(scheduleID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	session, err := h.editor.Open(r.Context(), scheduleID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toSessionDTO(session))
}

// GetSession returns the session's working copy.
func (h *PosterHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	session, err := h.editor.Get(token)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// UpdateSettings replaces the session's poster document.
func (h *PosterHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	var data poster.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	session, err := h.editor.UpdateSettings(r.Context(), token, data)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// SetImage installs or clears the session's background image.
func (h *PosterHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	var req setImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	session, err := h.editor.SetImage(r.Context(), token, req.DataURL)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// SetZoom adjusts the preview zoom. Values snap to the supported steps.
func (h *PosterHandler) SetZoom(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	var req setZoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	session, err := h.editor.SetZoom(token, req.Zoom)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// ApplyPreset merges a named preset table entry into the working copy.
func (h *PosterHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	var req applyPresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	session, err := h.editor.ApplyPreset(r.Context(), token, req.Kind, req.Name)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// Apply writes the working copy back to the schedule and closes the session.
func (h *PosterHandler) Apply(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	if err := h.editor.Apply(r.Context(), token); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Cancel discards the working copy and closes the session.
func (h *PosterHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	if err := h.editor.Cancel(r.Context(), token); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Export renders the working copy and streams the PNG as an attachment.
func (h *PosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	token, ok := h.sessionToken(w, r)
	if !ok {
		return
	}

	export, err := h.editor.Export(r.Context(), token)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to write export", "error", err)
	}
}

func (h *PosterHandler) sessionToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h == nil || h.editor == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return "", false
	}

	token, ok := SessionTokenFromContext(r.Context())
	if !ok || strings.TrimSpace(token) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidSessionToken)
		return "", false
	}
	return token, true
}

type setImageRequest struct {
	DataURL string `json:"data_url"`
}

type setZoomRequest struct {
	Zoom int `json:"zoom"`
}

type applyPresetRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type sessionDTO struct {
	Token      string      `json:"token"`
	ScheduleID string      `json:"schedule_id"`
	Data       poster.Data `json:"data"`
	Zoom       int         `json:"zoom"`
}

func toSessionDTO(session application.EditorSession) sessionDTO {
	return sessionDTO{
		Token:      session.Token,
		ScheduleID: session.ScheduleID,
		Data:       session.Data,
		Zoom:       session.Zoom,
	}
}
