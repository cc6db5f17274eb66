package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidPathParameter:  http.StatusBadRequest,
	ErrInvalidQueryParameter: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusForbidden,
	service.ErrTokenExpired:        http.StatusForbidden,
	service.ErrForbidden:           http.StatusForbidden,

	service.ErrNoCreditCard:      http.StatusPaymentRequired,
	service.ErrInsufficientFunds: http.StatusPaymentRequired,

	service.ErrPackageNotFound: http.StatusNotFound,
	service.ErrCarNotFound:     http.StatusNotFound,
	service.ErrUserNotFound:    http.StatusNotFound,
	service.ErrOrderNotFound:   http.StatusNotFound,

	service.ErrDuplicateUsername:       http.StatusConflict,
	service.ErrCreditCardAlreadyLinked: http.StatusConflict,
	service.ErrDuplicateCar:            http.StatusConflict,
	service.ErrDuplicatePackage:        http.StatusConflict,
	service.ErrCarNotAssigned:          http.StatusConflict,
	service.ErrCarAlreadyReturned:      http.StatusConflict,
	service.ErrPackageInUse:            http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers r with the JSON error body matching err. Details of
// server-side failures stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		utils.WriteError(w, status, app.MsgInternalServerError)
		return
	}

	log.Info().Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request rejected")
	utils.WriteError(w, status, err.Error())
}
