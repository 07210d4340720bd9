package models

import "time"

// Session is one authenticated browser context. The raw token is never
// stored: TokenHash is the lookup key.
type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	TokenHash string    `json:"token_hash"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired reports whether the session is no longer valid at now.
// A session is expired starting from the instant of ExpiresAt.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionMeta carries informational request attributes recorded when a
// session is issued.
type SessionMeta struct {
	IPAddress string
	UserAgent string
}

// SignInResult is returned by a successful sign-in. Token is the raw opaque
// session token that has to be handed to the client exactly once.
type SignInResult struct {
	Account Account
	Session Session
	Token   string
}

// ResolvedSession is the outcome of resolving a session token. Refreshed
// reports that sliding expiration moved ExpiresAt during the resolve.
type ResolvedSession struct {
	Account   Account
	Session   Session
	Refreshed bool
}
