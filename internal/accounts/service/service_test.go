package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/dotes/pkg/cryptox"
	"github.com/aussiebroadwan/dotes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recorder struct {
	mu            sync.Mutex
	logins        map[string]int
	registrations map[bool]int
	tokenChecks   map[string]int
}

func newRecorder() *recorder {
	return &recorder{
		logins:        map[string]int{},
		registrations: map[bool]int{},
		tokenChecks:   map[string]int{},
	}
}

func (r *recorder) ObserveLogin(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins[result]++
}

func (r *recorder) ObserveRegistration(admin bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[admin]++
}

func (r *recorder) ObserveTokenCheck(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenChecks[result]++
}

type fixture struct {
	store    *sqlite.Store
	codec    *jwtx.HS256Codec
	clock    *clock
	observer *recorder
	accounts *service.AccountService
	identity *service.IdentityService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	codec, err := jwtx.NewHS256Codec([]byte("service-test-signing-secret"), "dotes-accounts")
	require.NoError(t, err)

	clk := &clock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	obs := newRecorder()

	return &fixture{
		store:    s,
		codec:    codec,
		clock:    clk,
		observer: obs,
		accounts: &service.AccountService{
			Store:    s,
			Hasher:   cryptox.NewPasswordHasher("test-pepper"),
			Tokens:   codec,
			Observer: obs,
			Now:      clk.Now,
		},
		identity: &service.IdentityService{
			Store:    s,
			Verifier: codec,
			Observer: obs,
			Now:      clk.Now,
		},
	}
}

func registerInput(email, workspace string) service.RegisterInput {
	return service.RegisterInput{
		Email:          email,
		Password:       testPassword,
		RepeatPassword: testPassword,
		FullName:       "Test " + email,
		Workspace:      workspace,
	}
}

// register creates a user as caller (nil for anonymous) and fails the test on error.
func (f *fixture) register(t *testing.T, caller *domain.User, email, workspace string) domain.User {
	t.Helper()
	u, err := f.accounts.Register(context.Background(), caller, registerInput(email, workspace))
	require.NoError(t, err)
	return u
}

func (f *fixture) login(t *testing.T, email, password string) (service.LoginResult, error) {
	t.Helper()
	return f.accounts.Login(context.Background(), service.LoginInput{Email: email, Password: password})
}

func requireKind(t *testing.T, err error, kind service.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, service.KindOf(err), "got %v", err)
}
