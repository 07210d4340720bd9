package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/internal/utils"
)

// requireSession admits only requests that carry a live session cookie.
//
// The resolved account is stored in the request context under
// [utils.AccountCtxKey]. A missing, unknown or expired session is answered
// with 401; a failing session store with 500. When sliding expiration moved
// the session's expiry the cookie is re-issued.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := h.sessionToken(r)
		if token == "" {
			log.Debug().Err(ErrNoSessionCookie).Send()
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		resolved, err := h.services.AuthService.ResolveSessionDetails(ctx, token)
		if err != nil {
			log.Err(err).Msg("error occurred during session resolution")
			writeError(w, r, err)
			return
		}
		if resolved == nil {
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		if resolved.Refreshed {
			h.setSessionCookie(w, token)
		}

		account := resolved.Account
		next.ServeHTTP(w, r.WithContext(utils.WithAccount(ctx, &account)))
	})
}
