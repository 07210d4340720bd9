package service

import (
	"errors"

	"github.com/MKhiriev/go-store-locator/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrSignUpDisabled      = errors.New("sign-up is disabled")
	ErrUnauthorized        = errors.New("unauthorized")

	// ErrMisconfiguration is returned at request time when the server was
	// started with a setup that cannot verify credentials.
	ErrMisconfiguration = errors.New("server misconfiguration")

	ErrTokenGenerationFailed = errors.New("session token generation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrLocationNotFound         = errors.New("location not found")
	ErrStoreNumberAlreadyExists = errors.New("store number already exists")
	ErrInvalidReference         = errors.New("referenced district or manager does not exist")
	ErrMissingRequiredField     = validators.ErrMissingRequiredField
	ErrInvalidStoreHours        = validators.ErrInvalidStoreHours
)

// MissingFieldError names the required location field that was absent.
// It matches ErrMissingRequiredField with errors.Is.
type MissingFieldError = validators.MissingFieldError
