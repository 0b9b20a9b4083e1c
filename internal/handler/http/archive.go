package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	listArchive(w, r, h.services.ArchiveService.Analyses)
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	listArchive(w, r, h.services.ArchiveService.Chats)
}

func (h *Handler) listEdits(w http.ResponseWriter, r *http.Request) {
	listArchive(w, r, h.services.ArchiveService.Edits)
}

func (h *Handler) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	deleteArchived(w, r, "Handler.deleteAnalysis", h.services.ArchiveService.DeleteAnalysis)
}

func (h *Handler) deleteChat(w http.ResponseWriter, r *http.Request) {
	deleteArchived(w, r, "Handler.deleteChat", h.services.ArchiveService.DeleteChat)
}

func (h *Handler) deleteEdit(w http.ResponseWriter, r *http.Request) {
	deleteArchived(w, r, "Handler.deleteEdit", h.services.ArchiveService.DeleteEdit)
}

func (h *Handler) saveChat(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.SaveChatRequest
	if !decodeJSON(w, r, maxJSONBody, "Handler.saveChat", &req) {
		return
	}

	chat, err := h.services.ArchiveService.SaveChat(r.Context(), email, req.Messages)
	if err != nil {
		writeError(w, r, "Handler.saveChat", err)
		return
	}

	utils.WriteJSON(w, chat, http.StatusCreated)
}

// listArchive writes the user's items, or an empty array.
func listArchive[T any](w http.ResponseWriter, r *http.Request, list func(ctx context.Context, email string) []T) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	items := list(r.Context(), email)
	if items == nil {
		items = []T{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func deleteArchived(w http.ResponseWriter, r *http.Request, fn string, del func(ctx context.Context, email, id string) error) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := del(r.Context(), email, pathParam(r, "id")); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
