package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if request.Email == "" || request.Password == "" {
		writeError(w, r, fmt.Errorf("%w: email and password are required", service.ErrInvalidDataProvided))
		return
	}

	result, err := h.services.AuthService.SignIn(ctx, request.Email, request.Password, sessionMeta(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeEnvelope(w, r, models.AuthResponse{Success: true, User: &result.Account}, http.StatusOK)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AuthService.SignUp(ctx, request, sessionMeta(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeEnvelope(w, r, models.AuthResponse{Success: true, User: &result.Account}, http.StatusOK)
}

// signOut always succeeds: revoking is best effort and the cookie is
// cleared regardless.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if token := h.sessionToken(r); token != "" {
		if err := h.services.AuthService.SignOut(r.Context(), token); err != nil {
			logger.FromRequest(r).Err(err).Msg("failed to revoke session")
		}
	}

	h.clearSessionCookie(w)
	writeEnvelope(w, r, models.Response{Success: true}, http.StatusOK)
}

// getSession reports the current user or null. Lookup failures are logged
// and answered as "no session".
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.SessionResponse{}

	token := h.sessionToken(r)
	if token != "" {
		resolved, err := h.services.AuthService.ResolveSessionDetails(r.Context(), token)
		switch {
		case err != nil:
			log.Err(err).Msg("failed to resolve session")
		case resolved != nil:
			if resolved.Refreshed {
				h.setSessionCookie(w, token)
			}
			response.User = &resolved.Account
		}
	}

	writeEnvelope(w, r, response, http.StatusOK)
}
