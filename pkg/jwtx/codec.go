package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest shared secret accepted for HS256.
const MinSecretLength = 16

// HS256Codec issues and verifies access tokens signed with a single shared
// secret. The secret is loaded once at startup and never rotated in-process.
type HS256Codec struct {
	secret []byte
	issuer string
}

// NewHS256Codec creates a codec for the given secret. Issuer is optional; when
// set it is stamped on every token and enforced on verify.
func NewHS256Codec(secret []byte, issuer string) (*HS256Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(secret))
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Codec{secret: key, issuer: issuer}, nil
}

func (c *HS256Codec) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (c *HS256Codec) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Issue mints a token for subject that expires AccessTokenTTL after now.
func (c *HS256Codec) Issue(subject string, now time.Time) (string, Claims, error) {
	if strings.TrimSpace(subject) == "" {
		return "", Claims{}, fmt.Errorf("%w: empty subject", ErrInvalidClaim)
	}

	claims := NewAccessClaims(subject, c.issuer, now)
	token, err := c.Sign(claims)
	if err != nil {
		return "", Claims{}, fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, claims, nil
}

// Verify validates the JWT string against now and returns its Claims. Any
// failure is reported as an error wrapping one of the package sentinels; it
// never panics on untrusted input.
func (c *HS256Codec) Verify(tokenStr string, now time.Time) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, ErrMalformed
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	// Now check all the claim requirements
	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(now); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidClaim)
	}

	return *claims, nil
}

// classify maps golang-jwt errors onto our sentinels so callers only ever
// have to know about jwtx.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", ErrNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable), errors.Is(err, ErrAlgMismatch):
		return fmt.Errorf("%w: %w", ErrAlgMismatch, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
