// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpRentalAdapter {
	t.Helper()
	log := logger.Nop()

	a, err := NewHTTPRentalAdapter(config.Adapter{HTTPAddress: serverURL}, log)
	require.NoError(t, err)
	return a.(*httpRentalAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "with scheme", raw: "https://rental.example.com/", want: "https://rental.example.com"},
		{name: "without scheme", raw: " localhost:8080 ", want: "http://localhost:8080"},
		{name: "empty", raw: "  ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPRentalAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPRentalAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestLogin_StoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "secret1"}, creds)

		w.Header().Set(accessTokenHeader, "access-1")
		w.Header().Set(refreshTokenHeader, "refresh-1")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), "alice", "secret1"))

	access, refresh := a.Tokens()
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized", Message: "bad credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "bad credentials")
	access, _ := a.Tokens()
	assert.Empty(t, access)
}

func TestLogin_MissingTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.Login(context.Background(), "alice", "secret1"), ErrNoTokens)
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/refresh", r.URL.Path)
		assert.Equal(t, "Bearer refresh-1", r.Header.Get("Authorization"))

		w.Header().Set(accessTokenHeader, "access-2")
		w.Header().Set(refreshTokenHeader, "refresh-2")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.Refresh(context.Background()), ErrNotLoggedIn)

	a.refreshToken = "refresh-1"
	require.NoError(t, a.Refresh(context.Background()))

	access, refresh := a.Tokens()
	assert.Equal(t, "access-2", access)
	assert.Equal(t, "refresh-2", refresh)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/registration", r.URL.Path)
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "Conflict", Message: "username already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestUsernameExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/registration/username/alice", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.UsernameCheckResponse{Username: "alice", Exists: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	exists, err := a.UsernameExists(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListCars_SendsFilterAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cars", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("available"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))

		writeJSON(t, w, http.StatusOK, models.PageResponse[models.Car]{
			Items: []models.Car{{CarID: 3, Brand: "Skoda", Model: "Octavia", PackageName: "Standard", IsAvailable: true}},
			Page:  1,
			Size:  5,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.accessToken = "access-1"

	cars, err := a.ListCars(context.Background(), true, models.Page{Number: 1, Size: 5})
	require.NoError(t, err)
	require.Len(t, cars.Items, 1)
	assert.Equal(t, "Skoda", cars.Items[0].Brand)
}

func TestSubmitOrder(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		want    models.AccessKeyDTO
		wantErr error
	}{
		{
			name:   "paid",
			status: http.StatusOK,
			body:   models.AccessKeyDTO{CarPackage: "Luxury", Hours: 3},
			want:   models.AccessKeyDTO{CarPackage: "Luxury", Hours: 3},
		},
		{
			name:    "insufficient funds",
			status:  http.StatusPaymentRequired,
			body:    models.ErrorResponse{Error: "Payment Required", Message: "insufficient funds"},
			wantErr: ErrPaymentRequired,
		},
		{
			name:    "unknown package",
			status:  http.StatusNotFound,
			body:    models.ErrorResponse{Error: "Not Found", Message: "car package not found"},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/orders", r.URL.Path)

				var order models.OrderRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
				assert.Equal(t, models.OrderRequest{CarPackage: "Luxury", Hours: 3}, order)

				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.SubmitOrder(context.Background(), models.OrderRequest{CarPackage: "Luxury", Hours: 3})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/balance", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.BalanceResponse{AccountBalance: 1200})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	balance, err := a.GetBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1200), balance.AccountBalance)
}

func TestLinkCreditCard_AlreadyLinked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/credit-card", r.URL.Path)
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "Conflict", Message: "credit card already linked"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.LinkCreditCard(context.Background(), models.CreditCard{CardNumber: "4111111111111111", Month: 1, Year: 2030, CVV: "123"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestReturnCar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/delivery/return/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.ReturnCar(context.Background(), 42))
}

func TestListAccessKeysAndOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/delivery/access-keys":
			writeJSON(t, w, http.StatusOK, []models.AccessKey{{OrderID: 1, Code: "abc", CarPackage: "Standard", Hours: 2}})
		case "/orders":
			writeJSON(t, w, http.StatusOK, []models.PlacedOrder{{OrderID: 1, CarPackage: "Standard", Hours: 2, Charge: 200}})
		case "/cars/packages":
			writeJSON(t, w, http.StatusOK, []models.CarPackage{{PackageID: 1, PackageName: "Standard", PricePerHour: 100}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	keys, err := a.ListAccessKeys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "abc", keys[0].Code)

	orders, err := a.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(200), orders[0].Charge)

	packages, err := a.ListCarPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Standard", packages[0].PackageName)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.2.0", Date: "2026-01-01", Commit: "abc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.0", v.Version)
}

func TestMapHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/plain":
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("  short and stout "))
		case "/empty":
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	resp, err := a.client.R().Get("/plain")
	require.NoError(t, err)
	mapped := mapHTTPError(resp)
	assert.EqualError(t, mapped, "http 418: short and stout")

	resp, err = a.client.R().Get("/empty")
	require.NoError(t, err)
	mapped = mapHTTPError(resp)
	assert.True(t, errors.Is(mapped, ErrServiceUnavailable))
	assert.Contains(t, mapped.Error(), "Service Unavailable")
}
