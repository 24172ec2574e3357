package accountsdk

import "time"

// ============================================================================
// Envelopes
// ============================================================================

// Response is the envelope every endpoint answers with. Data is only set on
// success responses that carry a payload.
type Response struct {
	// Status is "success" or "error"
	Status string `json:"status" example:"error"`

	// Message is a human-readable outcome
	Message string `json:"message" example:"Token is invalid"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Status  string    `json:"status" example:"success"`
	Message string    `json:"message" example:"Login successful"`
	Data    LoginData `json:"data"`
}

// UserDetailsResponse is returned by GET /profile and POST /register.
type UserDetailsResponse struct {
	Status  string          `json:"status" example:"success"`
	Message string          `json:"message"`
	Data    UserDetailsData `json:"data"`
}

// UsersResponse is returned by GET /get_all_users.
type UsersResponse struct {
	Status  string    `json:"status" example:"success"`
	Message string    `json:"message"`
	Data    UsersData `json:"data"`
}

// ============================================================================
// Payloads
// ============================================================================

type LoginData struct {
	// Token goes into the X-Access-Token header of later requests
	Token string `json:"token"`

	// ExpiresAt is when the token stops being accepted
	ExpiresAt time.Time `json:"expires_at"`
}

// UserDetails is the public view of a user. Password hashes never leave
// the service.
type UserDetails struct {
	Email     string `json:"email" example:"alice@example.com"`
	FullName  string `json:"fullname" example:"Alice Example"`
	Workspace string `json:"workspace" example:"acme"`
	IsAdmin   bool   `json:"is_admin"`
	PublicID  string `json:"public_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
}

type UserDetailsData struct {
	UserDetails UserDetails `json:"user_details"`
}

type UsersData struct {
	AllUsers []UserDetails `json:"all_users"`
}

// ============================================================================
// Requests
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct-horse-battery"`
}

// RegisterRequest creates a user. Anonymous callers must name a workspace
// that does not exist yet; admins may name their own workspace or a new one.
type RegisterRequest struct {
	Email          string `json:"email" example:"alice@example.com"`
	Password       string `json:"password" example:"correct-horse-battery"`
	RepeatPassword string `json:"repeat_password" example:"correct-horse-battery"`
	FullName       string `json:"fullname" example:"Alice Example"`
	Workspace      string `json:"workspace" example:"acme"`
}

type UpdatePasswordRequest struct {
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
// RepeatPassword is required whenever Password is set.
type UpdateUserRequest struct {
	Email          *string `json:"email,omitempty"`
	FullName       *string `json:"fullname,omitempty"`
	Password       *string `json:"password,omitempty"`
	RepeatPassword *string `json:"repeat_password,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response from health check endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks contains the status of individual readiness checks.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
