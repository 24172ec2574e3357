package accountsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the dotes account service. It covers the
// unauthenticated operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new account service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	data, err := c.LoginToken(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return c.NewSession(data.Token, data.ExpiresAt), nil
}

// LoginToken performs POST /login and returns the raw token payload.
func (c *Client) LoginToken(ctx context.Context, req LoginRequest) (*LoginData, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", req, "")
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Register creates a user anonymously. The workspace must not exist yet and
// the new user becomes its admin.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserDetails, error) {
	return c.register(ctx, req, "")
}

func (c *Client) register(ctx context.Context, req RegisterRequest, token string) (*UserDetails, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/register", req, token)
	if err != nil {
		return nil, err
	}

	var out UserDetailsResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data.UserDetails, nil
}

// NewSession wraps an existing access token. A zero expiresAt never expires
// client-side.
func (c *Client) NewSession(token string, expiresAt time.Time) *Session {
	return &Session{client: c, token: token, expiresAt: expiresAt}
}
