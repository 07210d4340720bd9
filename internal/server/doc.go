// Package server runs the HTTP and gRPC listeners alongside the background
// workers and stops all of them together on SIGINT, SIGTERM or SIGQUIT, or
// when either listener fails.
package server
