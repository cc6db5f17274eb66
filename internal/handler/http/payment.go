package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// linkCreditCard stores the card of the caller. Card details are never
// echoed back.
func (h *Handler) linkCreditCard(w http.ResponseWriter, r *http.Request) {
	var card models.CreditCard
	if err := decodeJSON(r, &card); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.PaymentService.LinkCreditCard(r.Context(), card); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.PaymentService.GetBalance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, balance, http.StatusOK)
}
