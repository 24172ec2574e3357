package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/policy"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/pkg/cryptox"
	"github.com/aussiebroadwan/dotes/pkg/idx"
	"github.com/aussiebroadwan/dotes/pkg/jwtx"
	"github.com/aussiebroadwan/dotes/pkg/slogx"
)

// maxPublicIDAttempts bounds the collision retry loop when minting public IDs.
const maxPublicIDAttempts = 16

var errPublicIDExhausted = errors.New("could not generate a unique public id")

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// TokenIssuer is satisfied by *jwtx.HS256Codec.
type TokenIssuer interface {
	Issue(subject string, now time.Time) (string, jwtx.Claims, error)
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AccountService implements the account operations on top of the store,
// the privilege policy, the hasher and the token issuer. Callers pass the
// identity already resolved by IdentityService.
type AccountService struct {
	Store    store.Store
	Hasher   PasswordHasher
	Tokens   TokenIssuer
	Observer Observer

	// Now defaults to time.Now.
	Now func() time.Time
	// NewPublicID defaults to idx.NewPublicID.
	NewPublicID func() string
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login exchanges credentials for an access token. Unknown emails and wrong
// passwords fail with the same ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	obs := observerOrNop(s.Observer)

	// 1. Normalise and validate
	in.Email = normalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		obs.ObserveLogin(ResultInvalid)
		return LoginResult{}, badRequest(err)
	}

	// 2. Look the user up
	u, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		obs.ObserveLogin(ResultFailure)
		log.Info("login failed", slog.String("email", in.Email), slog.String("reason", "unknown email"))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		obs.ObserveLogin(ResultError)
		log.Error("failed to load user for login", slog.Any("err", err))
		return LoginResult{}, internal(err)
	}

	// 3. Check the password
	if err := s.Hasher.Verify(in.Password, u.PasswordHash); err != nil {
		obs.ObserveLogin(ResultFailure)
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash is unusable", slog.String("public_id", u.PublicID), slog.Any("err", err))
		} else {
			log.Info("login failed", slog.String("email", in.Email), slog.String("reason", "wrong password"))
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	// 4. Issue the token
	token, claims, err := s.Tokens.Issue(u.PublicID, s.now())
	if err != nil {
		obs.ObserveLogin(ResultError)
		log.Error("failed to issue token", slog.Any("err", err))
		return LoginResult{}, internal(err)
	}

	obs.ObserveLogin(ResultSuccess)
	log.Info("login succeeded", slog.String("public_id", u.PublicID))
	return LoginResult{Token: token, ExpiresAt: claims.ExpiresAtTime()}, nil
}

// Register creates a user. caller is nil for anonymous self-registration.
func (s *AccountService) Register(ctx context.Context, caller *domain.User, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Only admins may add users on behalf of someone else
	if err := policy.CanRegister(caller); err != nil {
		return domain.User{}, ErrNotAdmin
	}

	// 2. Normalise and validate
	in.Email = normalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Workspace = strings.TrimSpace(in.Workspace)
	if err := in.Validate(); err != nil {
		return domain.User{}, badRequest(err)
	}
	if in.Password != in.RepeatPassword {
		return domain.User{}, ErrPasswordMismatch
	}

	// 3. Hash outside the transaction, it is the slow part
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, internal(err)
	}

	var created domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 4. Email is globally unique, checked before any workspace logic
		if _, err := tx.Users().GetUserByEmail(ctx, in.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return internal(err)
		}

		// 5. Apply the workspace policy
		_, err := tx.Workspaces().GetWorkspaceByName(ctx, in.Workspace)
		exists := err == nil
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return internal(err)
		}

		decision, err := policy.Register(caller, in.Workspace, exists)
		if err != nil {
			return registrationDenied(err, in.Workspace)
		}

		if decision.CreateWorkspace {
			err := tx.Workspaces().CreateWorkspace(ctx, domain.Workspace{
				ID:   idx.New().String(),
				Name: in.Workspace,
			})
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrWorkspaceTaken
			}
			if err != nil {
				return internal(err)
			}
		}

		// 6. Mint a public id that is not in use yet
		publicID, err := s.uniquePublicID(ctx, tx)
		if err != nil {
			return internal(err)
		}

		created = domain.User{
			PublicID:     publicID,
			Email:        in.Email,
			FullName:     in.FullName,
			PasswordHash: hash,
			Workspace:    in.Workspace,
			IsAdmin:      decision.Admin,
		}
		if err := tx.Users().CreateUser(ctx, created); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return internal(err)
		}
		return nil
	})
	if err != nil {
		logFailure(log, "registration failed", err)
		return domain.User{}, err
	}

	observerOrNop(s.Observer).ObserveRegistration(created.IsAdmin)
	log.Info("user registered",
		slog.String("public_id", created.PublicID),
		slog.String("workspace", created.Workspace),
		slog.Bool("is_admin", created.IsAdmin),
	)
	return created, nil
}

func registrationDenied(err error, workspace string) error {
	switch {
	case errors.Is(err, policy.ErrNotAdmin):
		return ErrNotAdmin
	case errors.Is(err, policy.ErrCrossWorkspace):
		return forbiddenWorkspace(workspace)
	case errors.Is(err, policy.ErrWorkspaceTaken):
		return ErrWorkspaceTaken
	default:
		return internal(err)
	}
}

func (s *AccountService) uniquePublicID(ctx context.Context, tx store.Tx) (string, error) {
	gen := s.NewPublicID
	if gen == nil {
		gen = idx.NewPublicID
	}

	for range maxPublicIDAttempts {
		id := gen()
		taken, err := tx.Users().PublicIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", errPublicIDExhausted
}

// ChangePassword overwrites the caller's own password. The current password
// is not re-checked.
func (s *AccountService) ChangePassword(ctx context.Context, caller domain.User, in ChangePasswordInput) error {
	log := slogx.FromContext(ctx)

	// 1. Validate and confirm
	if err := in.Validate(); err != nil {
		return badRequest(err)
	}
	if in.Password != in.RepeatPassword {
		return ErrPasswordMismatch
	}

	// 2. Hash and store
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return internal(err)
	}

	err = s.Store.Users().UpdatePasswordHash(ctx, caller.PublicID, hash)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to update password", slog.Any("err", err))
		return internal(err)
	}

	log.Info("password updated", slog.String("public_id", caller.PublicID))
	return nil
}

// ListWorkspaceUsers returns every user sharing the caller's workspace.
func (s *AccountService) ListWorkspaceUsers(ctx context.Context, caller domain.User) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsersByWorkspace(ctx, caller.Workspace)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list workspace users", slog.Any("err", err))
		return nil, internal(err)
	}
	return users, nil
}

// UpdateUser applies a partial update to the user registered under
// targetEmail. Only admins may do so, and only inside their own workspace.
func (s *AccountService) UpdateUser(ctx context.Context, caller domain.User, targetEmail string, in UpdateUserInput) error {
	log := slogx.FromContext(ctx)

	// 1. Members never manage other users
	if err := policy.RequireAdmin(caller); err != nil {
		return ErrNotAdmin
	}

	// 2. Validate only the fields that are present
	if in.Empty() {
		return ErrNothingToUpdate
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		in.Email = &email
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		in.FullName = &name
	}
	if err := in.Validate(); err != nil {
		return badRequest(err)
	}

	patch := domain.UserPatch{Email: in.Email, FullName: in.FullName}
	if in.Password != nil {
		if *in.Password != *in.RepeatPassword {
			return ErrPasswordMismatch
		}
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return internal(err)
		}
		patch.PasswordHash = &hash
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 3. Load the target and check the workspace boundary
		target, err := s.loadTarget(ctx, tx, targetEmail)
		if err != nil {
			return err
		}
		if err := policy.ManageUser(caller, target); err != nil {
			return ErrCrossWorkspaceUpdate
		}

		// 4. A new email must still be globally unique
		if patch.Email != nil && *patch.Email != target.Email {
			if _, err := tx.Users().GetUserByEmail(ctx, *patch.Email); err == nil {
				return ErrEmailTaken
			} else if !errors.Is(err, store.ErrNotFound) {
				return internal(err)
			}
		}

		err = tx.Users().UpdateUser(ctx, target.PublicID, patch)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrEmailTaken
		case errors.Is(err, store.ErrNotFound):
			return ErrUserNotFound
		case err != nil:
			return internal(err)
		}

		log.Info("user updated",
			slog.String("public_id", target.PublicID),
			slog.String("by", caller.PublicID),
		)
		return nil
	})
	if err != nil {
		logFailure(log, "user update failed", err)
	}
	return err
}

// DeleteUser removes the user registered under targetEmail. The workspace
// record stays even when it becomes empty.
func (s *AccountService) DeleteUser(ctx context.Context, caller domain.User, targetEmail string) error {
	log := slogx.FromContext(ctx)

	if err := policy.RequireAdmin(caller); err != nil {
		return ErrNotAdmin
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := s.loadTarget(ctx, tx, targetEmail)
		if err != nil {
			return err
		}
		if err := policy.ManageUser(caller, target); err != nil {
			return ErrCrossWorkspaceDelete
		}

		err = tx.Users().DeleteUser(ctx, target.PublicID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrUserNotFound
		case err != nil:
			return internal(err)
		}

		log.Info("user removed",
			slog.String("public_id", target.PublicID),
			slog.String("by", caller.PublicID),
		)
		return nil
	})
	if err != nil {
		logFailure(log, "user removal failed", err)
	}
	return err
}

func (s *AccountService) loadTarget(ctx context.Context, tx store.Tx, email string) (domain.User, error) {
	target, err := tx.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, internal(err)
	}
	return target, nil
}

// logFailure logs internal failures at error level with their cause and
// expected rejections at info.
func logFailure(log *slog.Logger, msg string, err error) {
	if KindOf(err) == KindInternal {
		log.Error(msg, slog.Any("err", err))
		return
	}
	log.Info(msg, slog.String("reason", PublicMessage(err)))
}
