// Package http serves the store-locator REST API.
//
// Routes are grouped under /api: the auth endpoints (sign-in, sign-out,
// get-session and the optional sign-up) and the location endpoints, which
// need a valid session cookie. The middleware chain assigns a trace id,
// logs each request and gzips location traffic. Handler errors are turned
// into the JSON envelope {"success": false, "error": ...}.
package http
