package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/metrics"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// submitOrder charges the caller for the requested package and hours. On
// success only the package name and hours are echoed back.
func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var request models.OrderRequest
	if err := decodeJSON(r, &request); err != nil {
		h.metrics.ObserveOrder(metrics.OrderRejected)
		writeError(w, r, err)
		return
	}

	accessKey, err := h.services.OrderService.SubmitOrder(r.Context(), request.CarPackage, request.Hours)
	h.metrics.ObserveOrder(orderOutcome(err))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, accessKey, http.StatusOK)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.services.OrderService.GetOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func orderOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OrderSucceeded
	case errors.Is(err, service.ErrInsufficientFunds):
		return metrics.OrderInsufficientFunds
	case errors.Is(err, service.ErrNoCreditCard):
		return metrics.OrderNoCreditCard
	case errors.Is(err, service.ErrPackageNotFound):
		return metrics.OrderPackageNotFound
	case statusFromError(err) < http.StatusInternalServerError:
		return metrics.OrderRejected
	default:
		return metrics.OrderFailed
	}
}
