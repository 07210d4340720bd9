// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is logged when a protected route is called without
	// the session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidJSON is reported for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is reported for unparsable query parameters.
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// ErrInvalidGzipBody is reported when a request declares gzip encoding but
// the body is not a gzip stream.
var ErrInvalidGzipBody = errors.New("invalid gzip data")
