package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, maxJSONBody, "Handler.register", &creds) {
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

// login answers with the user and a bearer token in the Authorization
// header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if !decodeJSON(w, r, maxJSONBody, "Handler.login", &creds) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	logger.FromRequest(r).Info().Str("email", user.Email).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// logout only acknowledges: tokens are stateless and the client drops its
// copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if email, ok := currentUser(w, r); ok {
		logger.FromRequest(r).Info().Str("email", email).Msg("user logged out")
		w.WriteHeader(http.StatusNoContent)
	}
}
