package server

// Server defines the lifecycle contract of the process' transports.
//
// RunServer blocks until a termination signal arrives or a transport fails,
// then shuts everything down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
