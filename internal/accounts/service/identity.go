package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/pkg/cryptox"
	"github.com/aussiebroadwan/dotes/pkg/jwtx"
	"github.com/aussiebroadwan/dotes/pkg/slogx"
)

// IdentityService resolves the caller behind an access token. It backs both
// the optional and the required guard.
type IdentityService struct {
	Store    store.Store
	Verifier jwtx.Verifier
	Observer Observer

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *IdentityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Optional resolves token to a user when it can. An absent token, a token
// that fails verification, or a subject that no longer exists all resolve to
// an anonymous caller (nil, nil). Only store failures return an error.
func (s *IdentityService) Optional(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		observerOrNop(s.Observer).ObserveTokenCheck(ResultMissing)
		return nil, nil
	}

	u, err := s.resolve(ctx, token)
	if err != nil {
		if KindOf(err) == KindUnauthorized {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Required resolves token to a user or fails with an Unauthorized error.
func (s *IdentityService) Required(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		observerOrNop(s.Observer).ObserveTokenCheck(ResultMissing)
		return domain.User{}, ErrTokenMissing
	}
	return s.resolve(ctx, token)
}

func (s *IdentityService) resolve(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	obs := observerOrNop(s.Observer)

	// 1. Check signature and expiry
	claims, err := s.Verifier.Verify(token, s.now())
	if err != nil {
		obs.ObserveTokenCheck(ResultInvalid)
		log.Debug("token rejected",
			slog.String("fingerprint", cryptox.FingerprintToken(token)),
			slog.Any("err", err),
		)
		return domain.User{}, ErrTokenInvalid
	}

	// 2. The subject must still exist
	u, err := s.Store.Users().GetUserByPublicID(ctx, claims.Subject)
	switch {
	case errors.Is(err, store.ErrNotFound):
		obs.ObserveTokenCheck(ResultNotFound)
		log.Info("token subject no longer exists", slog.String("public_id", claims.Subject))
		return domain.User{}, ErrTokenInvalid
	case err != nil:
		obs.ObserveTokenCheck(ResultError)
		log.Error("failed to resolve token subject", slog.Any("err", err))
		return domain.User{}, internal(err)
	}

	obs.ObserveTokenCheck(ResultSuccess)
	return u, nil
}
