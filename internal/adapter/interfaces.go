// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the store-locator HTTP API.
//
// The primary abstraction is [ServerAdapter]. The HTTP implementation keeps
// the session cookie returned by sign-in in a cookie jar, so every later
// call on the same adapter is authenticated.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-store-locator/models"
)

// ServerAdapter defines communication with a running store-locator server.
type ServerAdapter interface {
	// SignIn authenticates with email and password. On success the session
	// cookie is kept by the adapter and the signed-in account is returned.
	SignIn(ctx context.Context, email, password string) (*models.Account, error)

	// SignOut ends the current session. The server answers success even
	// when there is no session.
	SignOut(ctx context.Context) error

	// GetSession returns the account of the current session, or nil when
	// the adapter holds no valid session.
	GetSession(ctx context.Context) (*models.Account, error)

	// ListLocations fetches locations matching filter. It requires a
	// session.
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error)

	// Health fetches the server health report.
	Health(ctx context.Context) (models.HealthResponse, error)
}
