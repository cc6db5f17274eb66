package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registered, err := h.services.UserService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, registered, http.StatusCreated)
}

// checkUsername answers whether a username is taken. Absence is not an
// error.
func (h *Handler) checkUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	exists, err := h.services.UserService.UsernameExists(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsernameCheckResponse{Username: username, Exists: exists}, http.StatusOK)
}
