// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks location input before it reaches storage.
//
// A [Validator] accepts a value and an optional list of field names that
// restricts which rules run. With no fields every rule for the value's type
// applies.
package validators

import "context"

// Validator checks obj against the rules registered for its type. Passing
// fields limits the check to those rules; an unknown name yields
// ErrUnknownField and an unsupported type ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
