package accountsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session carries an access token. Tokens are not refreshable.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
}

// AccessToken returns the token sent on every request.
func (s *Session) AccessToken() string { return s.token }

// ExpiresAt returns when the server stops accepting the token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the token has expired, with a 30 second buffer.
func (s *Session) Expired() bool {
	if s.expiresAt.IsZero() {
		return false
	}
	return !time.Now().Before(s.expiresAt.Add(-30 * time.Second))
}

// Profile returns the caller's own details.
func (s *Session) Profile(ctx context.Context) (*UserDetails, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/profile", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out UserDetailsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data.UserDetails, nil
}

// ListUsers returns every user in the caller's workspace.
func (s *Session) ListUsers(ctx context.Context) ([]UserDetails, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/get_all_users", nil, s.token)
	if err != nil {
		return nil, err
	}

	var out UsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data.AllUsers, nil
}

// UpdatePassword replaces the caller's own password.
func (s *Session) UpdatePassword(ctx context.Context, password, repeat string) error {
	resp, err := s.client.doRequest(ctx, http.MethodPut, "/update_password",
		UpdatePasswordRequest{Password: password, RepeatPassword: repeat}, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Register adds a user. Admin only; the new user is a member when the
// workspace is the caller's own.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*UserDetails, error) {
	return s.client.register(ctx, req, s.token)
}

// UpdateUser applies a partial update to the user registered under email.
// Admin only, same workspace only.
func (s *Session) UpdateUser(ctx context.Context, email string, req UpdateUserRequest) error {
	resp, err := s.client.doRequest(ctx, http.MethodPut, "/update_user/"+url.PathEscape(email), req, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// DeleteUser removes the user registered under email. Admin only, same
// workspace only.
func (s *Session) DeleteUser(ctx context.Context, email string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/delete_user/"+url.PathEscape(email), nil, s.token)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
