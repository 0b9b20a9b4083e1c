package http

import (
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) listLabResults(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	labs := h.services.LabService.List(r.Context(), email)
	if labs == nil {
		labs = []models.LabResult{}
	}

	utils.WriteJSON(w, labs, http.StatusOK)
}

func (h *Handler) addLabResult(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	var lab models.LabResult
	if !decodeJSON(w, r, maxImageBody, "Handler.addLabResult", &lab) {
		return
	}

	saved, err := h.services.LabService.Add(r.Context(), email, lab)
	if err != nil {
		writeError(w, r, "Handler.addLabResult", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) deleteLabResult(w http.ResponseWriter, r *http.Request) {
	email, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.LabService.Delete(r.Context(), email, pathParam(r, "id")); err != nil {
		writeError(w, r, "Handler.deleteLabResult", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
