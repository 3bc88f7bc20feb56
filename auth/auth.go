// Package auth gates the admin surface behind a single shared secret and
// ephemeral session tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/brothersphoto/site-backend/errs"
)

// Verifier checks an entered admin secret. Pluggable so the credential
// source can change without touching the session machinery.
type Verifier interface {
	Verify(secret string) bool
}

// FixedSecret verifies against a single secret sourced from configuration.
// The comparison is constant-time but the secret itself is stored in
// plaintext, matching the deployed configuration; a hashed store would slot
// in as another Verifier.
type FixedSecret struct {
	secret string
}

func NewFixedSecret(secret string) FixedSecret {
	return FixedSecret{secret: secret}
}

func (v FixedSecret) Verify(secret string) bool {
	if v.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(secret)) == 1
}

const DefaultSessionLifetime = 12 * time.Hour

// Sessions holds the admin session state: it issues signed tokens on a
// correct secret, authenticates bearer tokens, and revokes them on logout.
// Sessions are ephemeral; a process restart clears all of them.
type Sessions struct {
	verifier   Verifier
	signingKey []byte
	lifetime   time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry, pruned lazily
}

func NewSessions(verifier Verifier, signingKey []byte, lifetime time.Duration) *Sessions {
	if lifetime <= 0 {
		lifetime = DefaultSessionLifetime
	}
	return &Sessions{
		verifier:   verifier,
		signingKey: signingKey,
		lifetime:   lifetime,
		revoked:    make(map[string]time.Time),
	}
}

// Login transitions Anonymous to Authenticated: the entered secret must
// match exactly, and on match a session token is issued. Any other input
// leaves the caller Anonymous.
func (s *Sessions) Login(secret string) (string, error) {
	if !s.verifier.Verify(secret) {
		return "", errs.NewUnauthorizedError("invalid password")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("signing session token", err)
	}
	return token, nil
}

// Authenticate checks a bearer token: signature, expiry, and revocation.
func (s *Sessions) Authenticate(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, isRevoked := s.revoked[claims.ID]
	s.mu.Unlock()

	if isRevoked {
		return errs.NewInvalidTokenError()
	}
	return nil
}

// Logout transitions Authenticated back to Anonymous by revoking the token.
// Unknown or already-expired tokens are ignored.
func (s *Sessions) Logout(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, expiry := range s.revoked {
		if expiry.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[claims.ID] = claims.ExpiresAt.Time
}

func (s *Sessions) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewInvalidTokenError()
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}
	if !parsed.Valid || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, errs.NewInvalidTokenError()
	}
	return claims, nil
}
