package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// listCars pages through the cars ordered by id. available=true keeps only
// cars that can be rented right now.
func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.CarFilter{Page: page}
	if raw := r.URL.Query().Get("available"); raw != "" {
		filter.AvailableOnly, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, ErrInvalidQueryParameter)
			return
		}
	}

	cars, err := h.services.CatalogService.ListCars(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PageResponse[models.Car]{Items: cars, Page: page.Number, Size: page.Size}, http.StatusOK)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	car, err := h.services.CatalogService.GetCar(r.Context(), carID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if err := decodeJSON(r, &car); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CatalogService.CreateCar(r.Context(), car)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var car models.Car
	if err = decodeJSON(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	car.CarID = carID

	updated, err := h.services.CatalogService.UpdateCar(r.Context(), car)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CatalogService.DeleteCar(r.Context(), carID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCarPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.services.CatalogService.ListCarPackages(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, packages, http.StatusOK)
}

func (h *Handler) createCarPackage(w http.ResponseWriter, r *http.Request) {
	var carPackage models.CarPackage
	if err := decodeJSON(r, &carPackage); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CatalogService.CreateCarPackage(r.Context(), carPackage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteCarPackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CatalogService.DeleteCarPackage(r.Context(), packageID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
