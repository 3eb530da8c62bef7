package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/schedule-studio/internal/export"
)

type ExportHandler struct {
	service   scheduleService
	responder responder
}

func NewExportHandler(service scheduleService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{service: service, responder: newResponder(logger)}
}

// Schedules streams the full schedule list as an Excel workbook.
func (h *ExportHandler) Schedules(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	schedules, err := h.service.ListSchedules(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	workbook, err := export.BuildWorkbook(schedules)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.WorkbookFilename))
	w.WriteHeader(http.StatusOK)
	if err := workbook.Write(w); err != nil {
		h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to write workbook", "error", err)
	}
}
