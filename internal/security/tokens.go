// Package security provides identity-token issuance/verification and
// password hashing.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/vitaltrack/vitaltrack/internal/domain/auth"
)

// ErrInvalidToken is returned for any token that cannot be trusted:
// bad signature, tampering, malformed encoding, or expiry. Callers must not
// distinguish these cases for end users.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed, time-limited identity tokens
// (HS256 JWTs). Tokens are opaque to the client and carry only the subject
// and validity window; there is no refresh or rotation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService. The signing secret must be
// non-empty; enforcing that at startup is the caller's job (bootstrap fails
// fatally without one).
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue creates a signed token for the given user with a fresh expiry window.
func (s *TokenService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning the verified identity.
// Expired, mis-signed, or malformed tokens all return ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (domainauth.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return domainauth.Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return domainauth.Identity{}, ErrInvalidToken
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return domainauth.Identity{UserID: claims.Subject, ExpiresAt: expiresAt}, nil
}
