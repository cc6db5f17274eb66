package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

const (
	accessTokenHeader  = "access_token"
	refreshTokenHeader = "refresh_token"
)

// login authenticates the credentials of a JSON body or of the form fields
// username and password. The tokens are sent as response headers; the body
// stays empty.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, err := readCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.Authenticate(r.Context(), credentials.Username, credentials.Password, requestURL(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("user successfully logged in")

	writeTokens(w, pair)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

// refreshToken exchanges the refresh token of the Authorization header for a
// fresh access token.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), token, requestURL(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeTokens(w, pair)
	w.WriteHeader(http.StatusOK)
}

func readCredentials(r *http.Request) (models.Credentials, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return models.Credentials{}, ErrInvalidJSON
		}
		return models.Credentials{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	}

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		return models.Credentials{}, err
	}
	return credentials, nil
}

func writeTokens(w http.ResponseWriter, pair models.TokenPair) {
	if pair.AccessToken != nil {
		w.Header().Set(accessTokenHeader, pair.AccessToken.String())
	}
	if pair.RefreshToken != nil {
		w.Header().Set(refreshTokenHeader, pair.RefreshToken.String())
	}
}
