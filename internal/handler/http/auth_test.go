package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/models"
)

func tokenPair(access, refresh string) models.TokenPair {
	return models.TokenPair{
		AccessToken:  &models.Token{SignedString: access},
		RefreshToken: &models.Token{SignedString: refresh},
	}
}

func TestLogin_JSON(t *testing.T) {
	s := newTestServer(t)
	s.mocks.auth.EXPECT().
		Authenticate(gomock.Any(), "alice", "secret1", "http://example.com/login").
		Return(tokenPair("acc", "ref"), nil)

	rec := s.do(t, http.MethodPost, "/login", "", models.Credentials{Username: "alice", Password: "secret1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acc", rec.Header().Get(accessTokenHeader))
	assert.Equal(t, "ref", rec.Header().Get(refreshTokenHeader))
	assert.Empty(t, rec.Body.String())
}

func TestLogin_Form(t *testing.T) {
	s := newTestServer(t)
	s.mocks.auth.EXPECT().
		Authenticate(gomock.Any(), "alice", "secret1", gomock.Any()).
		Return(tokenPair("acc", "ref"), nil)

	form := url.Values{"username": {"alice"}, "password": {"secret1"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acc", rec.Header().Get(accessTokenHeader))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.mocks.auth.EXPECT().
		Authenticate(gomock.Any(), "alice", "wrong", gomock.Any()).
		Return(models.TokenPair{}, service.ErrInvalidCredentials)

	rec := s.do(t, http.MethodPost, "/login", "", models.Credentials{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get(accessTokenHeader))
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rec).Message)
}

func TestLogout_RedirectsToLogin(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(t, method, "/logout", "", nil)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestRefreshToken(t *testing.T) {
	s := newTestServer(t)
	s.mocks.auth.EXPECT().
		Refresh(gomock.Any(), "ref", "http://example.com/token/refresh").
		Return(tokenPair("new-acc", "ref"), nil)

	rec := s.do(t, http.MethodGet, "/token/refresh", "ref", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new-acc", rec.Header().Get(accessTokenHeader))
	assert.Equal(t, "ref", rec.Header().Get(refreshTokenHeader))
}

func TestRefreshToken_Errors(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodGet, "/token/refresh", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		s := newTestServer(t)
		s.mocks.auth.EXPECT().Refresh(gomock.Any(), "old", gomock.Any()).Return(models.TokenPair{}, service.ErrTokenExpired)

		rec := s.do(t, http.MethodGet, "/token/refresh", "old", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
