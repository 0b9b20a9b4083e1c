package http

import (
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.services.AdminService.ListUsers(r.Context())

	public := make([]models.User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

// deleteUser removes the account in the path together with all its data.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.AdminService.DeleteUser(r.Context(), actor, pathParam(r, "email")); err != nil {
		writeError(w, r, "Handler.deleteUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
