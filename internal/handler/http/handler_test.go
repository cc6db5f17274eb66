package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/metrics"
	"github.com/MKhiriev/go-car-rental/internal/mock"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/models"
)

// Bearer tokens understood by the AuthService mock of newTestServer.
const (
	adminToken   = "admin-token"
	managerToken = "manager-token"
	userToken    = "user-token"
	expiredToken = "expired-token"
	brokenToken  = "broken-token"
)

var (
	adminIdentity   = models.Identity{Username: "root", Roles: []models.Role{models.RoleAdmin, models.RoleManager, models.RoleUser}}
	managerIdentity = models.Identity{Username: "bob", Roles: []models.Role{models.RoleManager}}
	userIdentity    = models.Identity{Username: "alice", Roles: []models.Role{models.RoleUser}}
)

type serviceMocks struct {
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	catalog  *mock.MockCatalogService
	payment  *mock.MockPaymentService
	delivery *mock.MockDeliveryService
	orders   *mock.MockOrderService
	appInfo  *mock.MockAppInfoService
}

type testServer struct {
	handler *Handler
	router  http.Handler
	mocks   serviceMocks
}

// newTestServer builds the full router over service mocks. The AuthService
// mock resolves the tokens declared above.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		catalog:  mock.NewMockCatalogService(ctrl),
		payment:  mock.NewMockPaymentService(ctrl),
		delivery: mock.NewMockDeliveryService(ctrl),
		orders:   mock.NewMockOrderService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	m.auth.EXPECT().ParseAccessToken(gomock.Any(), adminToken).Return(adminIdentity, nil).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), managerToken).Return(managerIdentity, nil).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), userToken).Return(userIdentity, nil).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), expiredToken).Return(models.Identity{}, service.ErrTokenExpired).AnyTimes()
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), brokenToken).Return(models.Identity{}, service.ErrTokenInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:     m.auth,
		UserService:     m.users,
		CatalogService:  m.catalog,
		PaymentService:  m.payment,
		DeliveryService: m.delivery,
		OrderService:    m.orders,
		AppInfoService:  m.appInfo,
	}, metrics.New(), logger.Nop())

	return &testServer{handler: h, router: h.Init(), mocks: m}
}

// do sends a request through the router. body is JSON-encoded unless it is
// nil; token is sent as a bearer token unless it is empty.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// decodeError reads the JSON error body of rec.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svcs, m, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
	assert.Equal(t, defaultRoutePolicy, h.policy)
}

func newMockAuth(ctrl *gomock.Controller) *mock.MockAuthService {
	return mock.NewMockAuthService(ctrl)
}
