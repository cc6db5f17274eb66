package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every route answered by an admin token with a stubbed service must not be
// 404. Body-less requests fail decoding with 400, which still proves the
// route exists.
func TestInit_RegistersRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/login"},
		{http.MethodPost, "/registration"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodPost, "/cars"},
		{http.MethodPut, "/cars/1"},
		{http.MethodPost, "/cars/packages"},
		{http.MethodPost, "/orders"},
		{http.MethodPost, "/payment/credit-card"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(t, rt.method, rt.path, adminToken, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/nonexistent", userToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec).Error)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	s := newTestServer(t)

	// only GET is registered for /payment/balance
	rec := s.do(t, http.MethodDelete, "/payment/balance", userToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_InvalidPathParameter(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/cars/abc", userToken, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, ErrInvalidPathParameter.Error())
}
