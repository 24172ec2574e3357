package accounts_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestAccountLifecycle walks one workspace through every account operation.
func TestAccountLifecycle(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := t.Context()

	admin := createWorkspace(t, client, "owner@acme.test", "acme")

	// Admin adds a member to their own workspace
	member, err := admin.Register(ctx, registerRequest("dev@acme.test", "Dev", "acme"))
	require.NoError(t, err)
	require.False(t, member.IsAdmin, "users added to an existing workspace are members")
	require.Equal(t, "acme", member.Workspace)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Member sees its profile and roster but cannot administer
	memberSession := login(t, client, "dev@acme.test", testPassword)
	profile, err := memberSession.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, member.PublicID, profile.PublicID)

	roster, err := memberSession.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	err = memberSession.DeleteUser(ctx, "owner@acme.test")
	assertForbidden(t, err, "members cannot remove users")

	_, err = memberSession.Register(ctx, registerRequest("friend@acme.test", "Friend", "acme"))
	assertForbidden(t, err, "members cannot register users")

	// Member changes its own password
	require.NoError(t, memberSession.UpdatePassword(ctx, "a-new-password-1", "a-new-password-1"))
	_, err = client.Login(ctx, "dev@acme.test", testPassword)
	assertStatus(t, err, http.StatusBadRequest, "old password must stop working")
	login(t, client, "dev@acme.test", "a-new-password-1")

	// Admin renames and then removes the member
	require.NoError(t, admin.UpdateUser(ctx, "dev@acme.test", accountsdk.UpdateUserRequest{
		FullName: ptr("Developer"),
		Email:    ptr("developer@acme.test"),
	}))

	users, err = admin.ListUsers(ctx)
	require.NoError(t, err)
	var found bool
	for _, u := range users {
		if u.Email == "developer@acme.test" {
			found = true
			require.Equal(t, "Developer", u.FullName)
		}
	}
	require.True(t, found, "renamed user should be listed")

	require.NoError(t, admin.DeleteUser(ctx, "developer@acme.test"))

	err = admin.DeleteUser(ctx, "developer@acme.test")
	assertStatus(t, err, http.StatusNotFound, "deleting twice reports not found")

	// The deleted member's token no longer resolves
	_, err = memberSession.Profile(ctx)
	assertUnauthorized(t, err, "tokens of deleted users are rejected")
}

// TestRegisterRules covers anonymous and admin registration.
func TestRegisterRules(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := t.Context()

	admin := createWorkspace(t, client, "owner@acme.test", "acme")
	createWorkspace(t, client, "owner@globex.test", "globex")

	t.Run("anonymous cannot join an existing workspace", func(t *testing.T) {
		_, err := client.Register(ctx, registerRequest("intruder@acme.test", "Intruder", "acme"))
		assertStatus(t, err, http.StatusBadRequest, "existing workspace")
	})

	t.Run("email must be unique across workspaces", func(t *testing.T) {
		_, err := client.Register(ctx, registerRequest("OWNER@acme.test", "Copy", "initech"))
		assertStatus(t, err, http.StatusBadRequest, "duplicate email")
	})

	t.Run("admin cannot add to another workspace", func(t *testing.T) {
		_, err := admin.Register(ctx, registerRequest("spy@globex.test", "Spy", "globex"))
		assertForbidden(t, err, "foreign workspace")
	})

	t.Run("admin creating a new workspace makes an admin", func(t *testing.T) {
		u, err := admin.Register(ctx, registerRequest("lead@hooli.test", "Lead", "hooli"))
		require.NoError(t, err)
		require.True(t, u.IsAdmin)
	})

	t.Run("passwords must match", func(t *testing.T) {
		req := registerRequest("typo@initech.test", "Typo", "initech")
		req.RepeatPassword = "something-else"
		_, err := client.Register(ctx, req)
		assertStatus(t, err, http.StatusBadRequest, "mismatched passwords")
	})
}

// TestWorkspaceIsolation verifies admins cannot reach users elsewhere.
func TestWorkspaceIsolation(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := t.Context()

	acme := createWorkspace(t, client, "owner@acme.test", "acme")
	globex := createWorkspace(t, client, "owner@globex.test", "globex")

	users, err := acme.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "owner@acme.test", users[0].Email)

	err = acme.UpdateUser(ctx, "owner@globex.test", accountsdk.UpdateUserRequest{FullName: ptr("Pwned")})
	assertForbidden(t, err, "cross-workspace update")

	err = acme.DeleteUser(ctx, "owner@globex.test")
	assertForbidden(t, err, "cross-workspace delete")

	profile, err := globex.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Admin of globex", profile.FullName)
}

// TestTokenRequired verifies protected endpoints reject missing and forged
// tokens.
func TestTokenRequired(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)
	ctx := t.Context()

	createWorkspace(t, client, "owner@acme.test", "acme")

	_, err := client.NewSession("", time.Time{}).Profile(ctx)
	assertUnauthorized(t, err, "missing token")

	_, err = client.NewSession("not.a.jwt", time.Time{}).Profile(ctx)
	assertUnauthorized(t, err, "forged token")
}
