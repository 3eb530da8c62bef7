package http

import (
	"log/slog"
	"net/http"

	"github.com/example/schedule-studio/internal/application"
)

type memberDirectory interface {
	List() []application.Member
}

type MemberHandler struct {
	directory memberDirectory
	responder responder
}

func NewMemberHandler(directory memberDirectory, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{directory: directory, responder: newResponder(logger)}
}

// List returns the members available for binding to schedule roles.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.directory == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	members := h.directory.List()
	out := make([]memberDTO, 0, len(members))
	for _, member := range members {
		out = append(out, toMemberDTO(member))
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, listMembersResponse{Members: out})
}

type listMembersResponse struct {
	Members []memberDTO `json:"members"`
}
