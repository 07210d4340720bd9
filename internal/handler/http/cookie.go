// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// setSessionCookie hands the raw session token to the browser. The cookie
// carries nothing but the opaque token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, h.newSessionCookie(token, int(h.sessionLifetime.Seconds())))
}

// clearSessionCookie instructs the browser to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := h.newSessionCookie("", 0)
	// MaxAge < 0 renders as "Max-Age=0"
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

// sessionToken returns the token from the session cookie or "" when the
// request carries none.
func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) newSessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !h.cookie.Insecure,
		SameSite: sameSiteMode(h.cookie.SameSite),
	}
}

func sameSiteMode(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}
