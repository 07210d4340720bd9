// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// CredentialProvider is the provider name stored for email/password credentials.
const CredentialProvider = "credential"

// Account represents one authenticatable identity of the admin dashboard.
// Only ID, Email and DisplayName are ever serialized; the credential stays
// inside the server process.
type Account struct {
	// ID is the immutable opaque identifier (UUIDv7) assigned at creation.
	ID string `json:"id"`

	// Email is the unique sign-in lookup key, always stored normalized
	// (see [NormalizeEmail]).
	Email string `json:"email"`

	// DisplayName is an optional human-readable label.
	DisplayName string `json:"name"`

	// CreatedAt is the timestamp when the account was provisioned.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last change to the account row.
	UpdatedAt time.Time `json:"-"`

	// Credential is the password credential of the account. It is nil for
	// accounts that have no password-based sign-in.
	Credential *Credential `json:"-"`
}

// Public returns a copy of the account stripped of its credential.
func (a Account) Public() Account {
	return Account{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// HasPassword reports whether the account can sign in with a password.
func (a Account) HasPassword() bool {
	return a.Credential != nil && a.Credential.Digest != ""
}

// Credential holds the password digest of an account together with the
// per-account salt mixed into it and the algorithm that produced it.
type Credential struct {
	ID        string
	AccountID string
	Algorithm string
	Salt      string
	Digest    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail trims and lower-cases an email so that lookups are
// consistently case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
