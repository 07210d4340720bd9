package handler

import "errors"

// errNoTransports means the server config enables neither HTTP nor gRPC.
var errNoTransports = errors.New("no transport address configured")
