package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/models"
)

func TestLinkCreditCard(t *testing.T) {
	s := newTestServer(t)
	card := models.CreditCard{CardNumber: "4111111111111111", Month: 12, Year: 2099, CVV: "123", AccountBalance: 1000}
	s.mocks.payment.EXPECT().LinkCreditCard(gomock.Any(), card).Return(card, nil)

	rec := s.do(t, http.MethodPost, "/payment/credit-card", userToken, card)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestLinkCreditCard_AlreadyLinked(t *testing.T) {
	s := newTestServer(t)
	s.mocks.payment.EXPECT().LinkCreditCard(gomock.Any(), gomock.Any()).Return(models.CreditCard{}, service.ErrCreditCardAlreadyLinked)

	rec := s.do(t, http.MethodPost, "/payment/credit-card", userToken, models.CreditCard{CardNumber: "4111111111111111"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBalance(t *testing.T) {
	s := newTestServer(t)
	gomock.InOrder(
		s.mocks.payment.EXPECT().GetBalance(gomock.Any()).Return(models.BalanceResponse{AccountBalance: 200}, nil),
		s.mocks.payment.EXPECT().GetBalance(gomock.Any()).Return(models.BalanceResponse{}, service.ErrNoCreditCard),
	)

	rec := s.do(t, http.MethodGet, "/payment/balance", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"account_balance":200}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/payment/balance", userToken, nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestListAccessKeys(t *testing.T) {
	s := newTestServer(t)
	s.mocks.delivery.EXPECT().ListAccessKeys(gomock.Any()).
		Return([]models.AccessKey{{OrderID: 1, Code: "0192-abc", CarPackage: "Luxury", Hours: 2}}, nil)

	rec := s.do(t, http.MethodGet, "/delivery/access-keys", userToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"0192-abc"`)
}

func TestReturnCar(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "returned", wantStatus: http.StatusNoContent},
		{name: "unknown order", err: service.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "no car", err: service.ErrCarNotAssigned, wantStatus: http.StatusConflict},
		{name: "twice", err: service.ErrCarAlreadyReturned, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.mocks.delivery.EXPECT().ReturnCar(gomock.Any(), int64(3)).Return(tt.err)

			rec := s.do(t, http.MethodPost, "/delivery/return/3", userToken, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
