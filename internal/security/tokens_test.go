package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_RequiresSecret(t *testing.T) {
	svc, err := NewTokenService("", time.Hour)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("unit-test-secret", 7*24*time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), identity.ExpiresAt, time.Minute)
}

func TestTokenService_Issue_RequiresUserID(t *testing.T) {
	svc, err := NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)

	_, err = svc.Issue("")
	require.Error(t, err)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	// A nanosecond TTL makes the token expired by the time Verify runs.
	svc, err := NewTokenService("unit-test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc, err := NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, verr := svc.Verify(tok)
		assert.ErrorIs(t, verr, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenService_Verify_TamperedPayload(t *testing.T) {
	svc, err := NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash([]byte("password123"))
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, h.Compare(hash, []byte("password123")))
	assert.Error(t, h.Compare(hash, []byte("wrong-password")))
}

func TestNewHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, 10, NewHasher(0).Cost) // bcrypt.DefaultCost
	assert.Equal(t, 4, NewHasher(1).Cost)  // bcrypt.MinCost
	assert.Equal(t, 31, NewHasher(99).Cost)
}
