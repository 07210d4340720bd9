package models

// SignInRequest is the body of POST /api/auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /api/auth/sign-up and the input of
// credential provisioning.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by sign-in and sign-up.
type AuthResponse struct {
	Success bool     `json:"success"`
	User    *Account `json:"user"`
}

// SessionResponse is returned by GET /api/auth/get-session. User is null
// when there is no valid session.
type SessionResponse struct {
	User *Account `json:"user"`
}

// CreateLocationRequest is the body of POST /api/locations.
type CreateLocationRequest struct {
	Location
	Hours []StoreHours `json:"hours,omitempty"`
}

// Response is the envelope used by the JSON API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
