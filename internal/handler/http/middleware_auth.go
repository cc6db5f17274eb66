package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// authorize is the gate every request passes before routing.
//
// A request without an "Authorization" header, or with a scheme other than
// Bearer, proceeds anonymous. A bearer token that fails verification is
// answered with 403 right here. A verified token puts its [models.Identity]
// into the request context, where services read it with
// [utils.GetIdentityFromContext].
//
// The identity (or its absence) is then checked against the route policy:
// anonymous callers of a protected route get 401, callers lacking the
// required role get 403. Paths the policy ignores are served without looking
// at the token, so /token/refresh can receive a refresh token.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rule, found := h.policy.match(r.Method, r.URL.Path)
		if found && rule.access == accessIgnored {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		var identity *models.Identity

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if errors.Is(err, utils.ErrEmptyBearerToken) {
			log.Info().Err(ErrEmptyToken).Str("func", "*Handler.authorize").Send()
			utils.WriteError(w, http.StatusForbidden, ErrEmptyToken.Error())
			return
		}

		if err == nil {
			parsed, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
			if err != nil {
				log.Info().Err(err).Str("func", "*Handler.authorize").Msg("bearer token rejected")
				utils.WriteError(w, http.StatusForbidden, err.Error())
				return
			}

			identity = &parsed
			ctx = utils.WithIdentity(ctx, parsed)
		}

		verdict := forbidden
		if found {
			verdict = rule.permits(identity)
		}

		switch verdict {
		case unauthenticated:
			log.Info().Str("func", "*Handler.authorize").Str("path", r.URL.Path).Msg("anonymous access to protected route")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthenticationRequired)
			return
		case forbidden:
			log.Info().Str("func", "*Handler.authorize").Str("path", r.URL.Path).Msg("access denied")
			utils.WriteError(w, http.StatusForbidden, app.MsgAccessDenied)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
