package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.register(t, nil, "alice@example.com", "acme")

	t.Run("success returns a verifiable token", func(t *testing.T) {
		res, err := f.login(t, "alice@example.com", testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		require.True(t, f.clock.Now().Add(jwtx.AccessTokenTTL).Equal(res.ExpiresAt))

		claims, err := f.codec.Verify(res.Token, f.clock.Now())
		require.NoError(t, err)

		u, err := f.store.Users().GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.PublicID, claims.Subject)
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		_, err := f.login(t, "  ALICE@Example.com ", testPassword)
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPassword := f.login(t, "alice@example.com", "not-the-password")
		_, unknownEmail := f.login(t, "nobody@example.com", testPassword)

		require.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
		require.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
		require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		require.Equal(t, service.PublicMessage(wrongPassword), service.PublicMessage(unknownEmail))
	})

	t.Run("malformed input is a bad request", func(t *testing.T) {
		_, err := f.login(t, "not-an-email", testPassword)
		requireKind(t, err, service.KindBadRequest)

		_, err = f.login(t, "alice@example.com", "")
		requireKind(t, err, service.KindBadRequest)
	})

	require.Equal(t, 2, f.observer.logins[service.ResultSuccess])
	require.Equal(t, 2, f.observer.logins[service.ResultFailure])
	require.Equal(t, 2, f.observer.logins[service.ResultInvalid])
}

func TestLogin_TokenLifetime(t *testing.T) {
	f := newFixture(t)
	f.register(t, nil, "alice@example.com", "acme")

	res, err := f.login(t, "alice@example.com", testPassword)
	require.NoError(t, err)

	f.clock.Advance(jwtx.AccessTokenTTL - time.Second)
	_, err = f.identity.Required(context.Background(), res.Token)
	require.NoError(t, err)

	f.clock.Advance(time.Second)
	_, err = f.identity.Required(context.Background(), res.Token)
	require.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestRegister_Privileges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.register(t, nil, "admin@acme.test", "acme")
	require.True(t, admin.IsAdmin, "first user of a new workspace is an admin")
	require.Equal(t, "acme", admin.Workspace)
	require.NotEmpty(t, admin.PublicID)
	require.NotEqual(t, testPassword, admin.PasswordHash)

	member := f.register(t, &admin, "member@acme.test", "acme")
	require.False(t, member.IsAdmin, "admin-added user is a member")
	require.Equal(t, "acme", member.Workspace)

	t.Run("member cannot register anyone", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, &member, registerInput("third@acme.test", "acme"))
		require.ErrorIs(t, err, service.ErrNotAdmin)
		requireKind(t, err, service.KindForbidden)

		_, err = f.store.Users().GetUserByEmail(ctx, "third@acme.test")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("member check precedes validation", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, &member, service.RegisterInput{})
		require.ErrorIs(t, err, service.ErrNotAdmin)
	})

	t.Run("anonymous caller cannot join an existing workspace", func(t *testing.T) {
		_, err := f.accounts.Register(ctx, nil, registerInput("intruder@else.test", "acme"))
		require.ErrorIs(t, err, service.ErrWorkspaceTaken)
		requireKind(t, err, service.KindBadRequest)
	})

	t.Run("admin cannot add to another existing workspace", func(t *testing.T) {
		f.register(t, nil, "boss@globex.test", "globex")

		_, err := f.accounts.Register(ctx, &admin, registerInput("mole@acme.test", "globex"))
		requireKind(t, err, service.KindForbidden)
		require.Equal(t, "Forbidden. You are not authorized to add user to workspace globex", service.PublicMessage(err))
	})

	t.Run("admin naming a new workspace creates it with an admin", func(t *testing.T) {
		u := f.register(t, &admin, "founder@initech.test", "initech")
		require.True(t, u.IsAdmin)

		ws, err := f.store.Workspaces().GetWorkspaceByName(ctx, "initech")
		require.NoError(t, err)
		require.NotEmpty(t, ws.ID)
	})

	require.Equal(t, 3, f.observer.registrations[true])
	require.Equal(t, 1, f.observer.registrations[false])
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, nil, "taken@example.com", "acme")

	tests := []struct {
		name   string
		mutate func(in *service.RegisterInput)
		want   error
	}{
		{"missing email", func(in *service.RegisterInput) { in.Email = "" }, nil},
		{"malformed email", func(in *service.RegisterInput) { in.Email = "nope" }, nil},
		{"short password", func(in *service.RegisterInput) { in.Password, in.RepeatPassword = "short", "short" }, nil},
		{"missing full name", func(in *service.RegisterInput) { in.FullName = "   " }, nil},
		{"missing workspace", func(in *service.RegisterInput) { in.Workspace = "" }, nil},
		{"passwords differ", func(in *service.RegisterInput) { in.RepeatPassword = "something-else" }, service.ErrPasswordMismatch},
		{"email already used", func(in *service.RegisterInput) { in.Email = "taken@example.com" }, service.ErrEmailTaken},
		{"email used with other casing", func(in *service.RegisterInput) { in.Email = "TAKEN@example.com" }, service.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := registerInput("fresh@example.com", "fresh-workspace")
			tt.mutate(&in)

			_, err := f.accounts.Register(ctx, nil, in)
			requireKind(t, err, service.KindBadRequest)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}

			// Nothing may be left behind by a rejected registration.
			_, err = f.store.Workspaces().GetWorkspaceByName(ctx, "fresh-workspace")
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestRegister_EmailNormalised(t *testing.T) {
	f := newFixture(t)

	u := f.register(t, nil, "  Mixed.Case@Example.COM ", "acme")
	require.Equal(t, "mixed.case@example.com", u.Email)

	_, err := f.login(t, "mixed.case@example.com", testPassword)
	require.NoError(t, err)
}

func TestRegister_PublicIDCollision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accounts.NewPublicID = func() string { return "fixed-id" }
	first := f.register(t, nil, "first@example.com", "acme")
	require.Equal(t, "fixed-id", first.PublicID)

	t.Run("retries until a free id comes up", func(t *testing.T) {
		ids := []string{"fixed-id", "fixed-id", "fresh-id"}
		f.accounts.NewPublicID = func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}

		u := f.register(t, &first, "second@example.com", "acme")
		require.Equal(t, "fresh-id", u.PublicID)
	})

	t.Run("gives up after a bounded number of attempts", func(t *testing.T) {
		calls := 0
		f.accounts.NewPublicID = func() string {
			calls++
			return "fixed-id"
		}

		_, err := f.accounts.Register(ctx, nil, registerInput("third@example.com", "globex"))
		requireKind(t, err, service.KindInternal)
		require.Equal(t, "Internal server error", service.PublicMessage(err))
		require.Equal(t, 16, calls)

		_, err = f.store.Workspaces().GetWorkspaceByName(ctx, "globex")
		require.ErrorIs(t, err, store.ErrNotFound, "workspace creation must roll back")
	})
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, nil, "alice@example.com", "acme")

	t.Run("mismatch leaves the stored hash untouched", func(t *testing.T) {
		err := f.accounts.ChangePassword(ctx, u, service.ChangePasswordInput{
			Password:       "brand-new-password",
			RepeatPassword: "different-password",
		})
		require.ErrorIs(t, err, service.ErrPasswordMismatch)

		stored, err := f.store.Users().GetUserByPublicID(ctx, u.PublicID)
		require.NoError(t, err)
		require.Equal(t, u.PasswordHash, stored.PasswordHash)
	})

	t.Run("too short", func(t *testing.T) {
		err := f.accounts.ChangePassword(ctx, u, service.ChangePasswordInput{Password: "short", RepeatPassword: "short"})
		requireKind(t, err, service.KindBadRequest)
	})

	t.Run("success swaps the credential", func(t *testing.T) {
		err := f.accounts.ChangePassword(ctx, u, service.ChangePasswordInput{
			Password:       "brand-new-password",
			RepeatPassword: "brand-new-password",
		})
		require.NoError(t, err)

		_, err = f.login(t, "alice@example.com", testPassword)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
		_, err = f.login(t, "alice@example.com", "brand-new-password")
		require.NoError(t, err)
	})
}

func TestListWorkspaceUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.register(t, nil, "admin@acme.test", "acme")
	f.register(t, &acme, "member@acme.test", "acme")
	globex := f.register(t, nil, "admin@globex.test", "globex")

	users, err := f.accounts.ListWorkspaceUsers(ctx, acme)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "admin@acme.test", users[0].Email)
	require.Equal(t, "member@acme.test", users[1].Email)

	users, err = f.accounts.ListWorkspaceUsers(ctx, globex)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, globex.PublicID, users[0].PublicID)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.register(t, nil, "admin@acme.test", "acme")
	member := f.register(t, &admin, "member@acme.test", "acme")
	other := f.register(t, nil, "admin@globex.test", "globex")

	load := func(t *testing.T, publicID string) domain.User {
		t.Helper()
		u, err := f.store.Users().GetUserByPublicID(ctx, publicID)
		require.NoError(t, err)
		return u
	}

	t.Run("member is refused before anything else", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, member, "missing@acme.test", service.UpdateUserInput{})
		require.ErrorIs(t, err, service.ErrNotAdmin)
	})

	t.Run("empty update", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{})
		require.ErrorIs(t, err, service.ErrNothingToUpdate)
	})

	t.Run("unknown target", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "missing@acme.test", service.UpdateUserInput{FullName: ptr("X")})
		require.ErrorIs(t, err, service.ErrUserNotFound)
		requireKind(t, err, service.KindNotFound)
	})

	t.Run("cross workspace is forbidden", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "admin@globex.test", service.UpdateUserInput{FullName: ptr("Hijacked")})
		require.ErrorIs(t, err, service.ErrCrossWorkspaceUpdate)
		require.Equal(t, other.FullName, load(t, other.PublicID).FullName)
	})

	t.Run("only present fields change", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "MEMBER@acme.test", service.UpdateUserInput{FullName: ptr("  Renamed Member ")})
		require.NoError(t, err)

		got := load(t, member.PublicID)
		require.Equal(t, "Renamed Member", got.FullName)
		require.Equal(t, member.Email, got.Email)
		require.Equal(t, member.PasswordHash, got.PasswordHash)
		require.False(t, got.IsAdmin)
	})

	t.Run("invalid present field", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{Email: ptr("bogus")})
		requireKind(t, err, service.KindBadRequest)
	})

	t.Run("password without confirmation", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{Password: ptr("long-enough-pass")})
		requireKind(t, err, service.KindBadRequest)
	})

	t.Run("password mismatch", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{
			Password:       ptr("long-enough-pass"),
			RepeatPassword: ptr("another-long-pass"),
		})
		require.ErrorIs(t, err, service.ErrPasswordMismatch)
		require.Equal(t, member.PasswordHash, load(t, member.PublicID).PasswordHash)
	})

	t.Run("email must stay unique", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{Email: ptr("Admin@Globex.test")})
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("email and password change together", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "member@acme.test", service.UpdateUserInput{
			Email:          ptr("New.Member@Acme.test"),
			Password:       ptr("long-enough-pass"),
			RepeatPassword: ptr("long-enough-pass"),
		})
		require.NoError(t, err)

		got := load(t, member.PublicID)
		require.Equal(t, "new.member@acme.test", got.Email)
		require.NotEqual(t, "long-enough-pass", got.PasswordHash)

		_, err = f.login(t, "new.member@acme.test", "long-enough-pass")
		require.NoError(t, err)
		_, err = f.login(t, "member@acme.test", testPassword)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("admin may update themselves", func(t *testing.T) {
		err := f.accounts.UpdateUser(ctx, admin, "admin@acme.test", service.UpdateUserInput{Email: ptr("admin@acme.test")})
		require.NoError(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.register(t, nil, "a1@acme.test", "acme")
	m1 := f.register(t, &a1, "m1@acme.test", "acme")
	a2 := f.register(t, nil, "a2@globex.test", "globex")

	t.Run("member cannot delete", func(t *testing.T) {
		err := f.accounts.DeleteUser(ctx, m1, "a1@acme.test")
		require.ErrorIs(t, err, service.ErrNotAdmin)
	})

	t.Run("admin cannot delete in another workspace", func(t *testing.T) {
		err := f.accounts.DeleteUser(ctx, a1, "a2@globex.test")
		require.ErrorIs(t, err, service.ErrCrossWorkspaceDelete)
		require.Equal(t, "Action forbidden! Cannot remove user in another workspace", service.PublicMessage(err))

		_, err = f.login(t, "a2@globex.test", testPassword)
		require.NoError(t, err)
	})

	t.Run("unknown target", func(t *testing.T) {
		err := f.accounts.DeleteUser(ctx, a1, "ghost@acme.test")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("deleted user can no longer log in or use old tokens", func(t *testing.T) {
		res, err := f.login(t, "m1@acme.test", testPassword)
		require.NoError(t, err)

		require.NoError(t, f.accounts.DeleteUser(ctx, a1, "m1@acme.test"))

		_, err = f.login(t, "m1@acme.test", testPassword)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = f.identity.Required(ctx, res.Token)
		require.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("workspace outlives its last user", func(t *testing.T) {
		require.NoError(t, f.accounts.DeleteUser(ctx, a2, "a2@globex.test"))

		_, err := f.store.Workspaces().GetWorkspaceByName(ctx, "globex")
		require.NoError(t, err)

		_, err = f.accounts.Register(ctx, nil, registerInput("newcomer@globex.test", "globex"))
		require.ErrorIs(t, err, service.ErrWorkspaceTaken)
	})
}

func TestErrorMessagesNeverLeakCauses(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Close())

	_, err := f.login(t, "alice@example.com", testPassword)
	requireKind(t, err, service.KindInternal)
	require.Equal(t, "Internal server error", service.PublicMessage(err))
	require.False(t, strings.Contains(service.PublicMessage(err), "sql"))
}
