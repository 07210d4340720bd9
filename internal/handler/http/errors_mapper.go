package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/MKhiriev/go-store-locator/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidQuery:    http.StatusBadRequest,
	ErrInvalidGzipBody: http.StatusBadRequest,

	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrUnauthorized:             http.StatusUnauthorized,
	service.ErrDuplicateEmail:           http.StatusConflict,
	service.ErrAccountNotFound:          http.StatusNotFound,
	service.ErrSignUpDisabled:           http.StatusNotFound,
	service.ErrMisconfiguration:         http.StatusInternalServerError,
	service.ErrTokenGenerationFailed:    http.StatusInternalServerError,
	service.ErrLocationNotFound:         http.StatusNotFound,
	service.ErrStoreNumberAlreadyExists: http.StatusConflict,
	service.ErrInvalidReference:         http.StatusBadRequest,
	service.ErrMissingRequiredField:     http.StatusBadRequest,
	service.ErrInvalidStoreHours:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text put into the error envelope. Server
// side failures are never described to the client.
func messageFromError(err error) string {
	var missing *service.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return "Missing required field: " + missing.Field
	case errors.Is(err, service.ErrLocationNotFound):
		return "Location not found"
	case errors.Is(err, service.ErrStoreNumberAlreadyExists):
		return "Store number already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrUnauthorized):
		return "Unauthorized"
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
