package accounts_test

import (
	"testing"

	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
)

// TestLivezEndpoint verifies the liveness check on a fresh service.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the database and signer are reported ready.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	if health.Checks == nil {
		t.Fatal("readiness should report individual checks")
	}
	if health.Checks.Database != "ok" || health.Checks.Signer != "ok" {
		t.Fatalf("unexpected checks: %+v", health.Checks)
	}
}
