// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-store-locator/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the session middleware stores the
// authenticated account.
var AccountCtxKey = contextKey("account")

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, AccountCtxKey, account)
}

// GetAccountFromContext retrieves the authenticated account from the context.
//
// Returns ok == false when no account is stored, the value has an
// unexpected type or it is a nil pointer.
//
// Example usage:
//
//	account, ok := utils.GetAccountFromContext(ctx)
//	if !ok {
//	    // handle missing account in context
//	}
func GetAccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(*models.Account)
	if !ok || account == nil {
		return nil, false
	}
	return account, true
}
