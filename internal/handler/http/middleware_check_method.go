// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-locator/models"
)

// CheckHTTPMethod is installed as the chi MethodNotAllowed handler. Chi calls it
// only after routing matched the path but not the method, on the root mux or
// on a mounted sub-router such as /api/locations. It answers with the same
// JSON 404 as an unknown path, so callers cannot discover which routes exist,
// and never hands the request back to the router.
//
//	router.NotFound(notFound)
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

// notFound renders the JSON 404 envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, models.Response{Success: false, Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
