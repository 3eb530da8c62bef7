package http

import (
	"log/slog"
	"net/http"

	"github.com/example/schedule-studio/internal/application"
)

type reminderSource interface {
	Current() []application.Reminder
}

type ReminderHandler struct {
	source    reminderSource
	responder responder
}

func NewReminderHandler(source reminderSource, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{source: source, responder: newResponder(logger)}
}

// List returns the reminders from the most recent evaluation pass.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.source == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listRemindersResponse{Reminders: toReminderDTOs(h.source.Current())})
}

type listRemindersResponse struct {
	Reminders []reminderDTO `json:"reminders"`
}

type reminderDTO struct {
	Kind    string `json:"kind"`
	RefID   string `json:"ref_id"`
	Message string `json:"message"`
}

func toReminderDTOs(reminders []application.Reminder) []reminderDTO {
	if len(reminders) == 0 {
		return nil
	}
	out := make([]reminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		out = append(out, reminderDTO{Kind: reminder.Kind, RefID: reminder.RefID, Message: reminder.Message})
	}
	return out
}
