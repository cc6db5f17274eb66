package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/utils"
)

func (h *Handler) listAccessKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.DeliveryService.ListAccessKeys(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) returnCar(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DeliveryService.ReturnCar(r.Context(), orderID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
