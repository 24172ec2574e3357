package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
)

// TestRateLimitLoginEndpoint verifies /login is limited to 5 requests per
// minute per client IP.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupAccountsContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody@acme.test", "wrong-password")
		assertStatus(t, err, http.StatusBadRequest, "request %d should fail on credentials", i+1)
	}

	_, err := client.Login(ctx, "nobody@acme.test", "wrong-password")
	assertStatus(t, err, http.StatusTooManyRequests, "6th request should be rate limited")

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Too many requests. Please try again later.", apiErr.Message)
}
