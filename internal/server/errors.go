// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var errNoListeners = errors.New("nothing to serve: http and grpc listeners are both disabled")
