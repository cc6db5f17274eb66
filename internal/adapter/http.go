package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

const (
	accessTokenHeader  = "access_token"
	refreshTokenHeader = "refresh_token"
)

type httpRentalAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPRentalAdapter constructs the resty implementation of [RentalAPI].
// adapterCfg.HTTPAddress may omit the scheme, "http" is assumed then.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRentalAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RentalAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRentalAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRentalAdapter) Tokens() (string, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken, h.refreshToken
}

func (h *httpRentalAdapter) setTokens(resp *resty.Response) error {
	access := resp.Header().Get(accessTokenHeader)
	if access == "" {
		return ErrNoTokens
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = access
	if refresh := resp.Header().Get(refreshTokenHeader); refresh != "" {
		h.refreshToken = refresh
	}
	return nil
}

// Login implements [RentalAPI]. It POSTs the credentials to /login and keeps
// the tokens from the response headers.
func (h *httpRentalAdapter) Login(ctx context.Context, username, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Username: username, Password: password}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("func", "*httpRentalAdapter.Login").Str("username", username).Msg("logged in")
	return h.setTokens(resp)
}

// Refresh implements [RentalAPI]. The refresh token travels as the bearer
// token of GET /token/refresh.
func (h *httpRentalAdapter) Refresh(ctx context.Context) error {
	_, refresh := h.Tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(refresh).
		Get("/token/refresh")
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.setTokens(resp)
}

func (h *httpRentalAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/registration")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return registered, nil
}

func (h *httpRentalAdapter) UsernameExists(ctx context.Context, username string) (bool, error) {
	var check models.UsernameCheckResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetResult(&check).
		Get("/registration/username/{username}")
	if err != nil {
		return false, fmt.Errorf("username check request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return check.Exists, nil
}

func (h *httpRentalAdapter) ListCars(ctx context.Context, availableOnly bool, page models.Page) (models.PageResponse[models.Car], error) {
	var cars models.PageResponse[models.Car]
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"available": strconv.FormatBool(availableOnly),
			"page":      strconv.Itoa(page.Number),
			"size":      strconv.Itoa(page.Size),
		}).
		SetResult(&cars).
		Get("/cars")
	if err != nil {
		return models.PageResponse[models.Car]{}, fmt.Errorf("list cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PageResponse[models.Car]{}, err
	}

	return cars, nil
}

func (h *httpRentalAdapter) ListCarPackages(ctx context.Context) ([]models.CarPackage, error) {
	var packages []models.CarPackage
	resp, err := h.authedRequest(ctx).
		SetResult(&packages).
		Get("/cars/packages")
	if err != nil {
		return nil, fmt.Errorf("list car packages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return packages, nil
}

// SubmitOrder implements [RentalAPI]. A 402 answer is returned as
// [ErrPaymentRequired].
func (h *httpRentalAdapter) SubmitOrder(ctx context.Context, order models.OrderRequest) (models.AccessKeyDTO, error) {
	var accessKey models.AccessKeyDTO
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		SetResult(&accessKey).
		Post("/orders")
	if err != nil {
		return models.AccessKeyDTO{}, fmt.Errorf("submit order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessKeyDTO{}, err
	}

	return accessKey, nil
}

func (h *httpRentalAdapter) GetOrders(ctx context.Context) ([]models.PlacedOrder, error) {
	var orders []models.PlacedOrder
	resp, err := h.authedRequest(ctx).
		SetResult(&orders).
		Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("get orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h *httpRentalAdapter) LinkCreditCard(ctx context.Context, card models.CreditCard) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		Post("/payment/credit-card")
	if err != nil {
		return fmt.Errorf("link credit card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRentalAdapter) GetBalance(ctx context.Context) (models.BalanceResponse, error) {
	var balance models.BalanceResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&balance).
		Get("/payment/balance")
	if err != nil {
		return models.BalanceResponse{}, fmt.Errorf("get balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BalanceResponse{}, err
	}

	return balance, nil
}

func (h *httpRentalAdapter) ListAccessKeys(ctx context.Context) ([]models.AccessKey, error) {
	var keys []models.AccessKey
	resp, err := h.authedRequest(ctx).
		SetResult(&keys).
		Get("/delivery/access-keys")
	if err != nil {
		return nil, fmt.Errorf("list access keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return keys, nil
}

func (h *httpRentalAdapter) ReturnCar(ctx context.Context, orderID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("orderID", strconv.FormatInt(orderID, 10)).
		Post("/delivery/return/{orderID}")
	if err != nil {
		return fmt.Errorf("return car request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRentalAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpRentalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if access, _ := h.Tokens(); access != "" {
		req.SetAuthToken(access)
	}
	return req
}
