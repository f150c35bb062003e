package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaltrack/vitaltrack/internal/data/cryptoutil"
)

func TestCreateEncryptor_EmptyKeyDev(t *testing.T) {
	enc, err := CreateEncryptor("", true, nil)
	require.NoError(t, err)

	_, ok := enc.(cryptoutil.PlainEncryptor)
	assert.True(t, ok, "dev mode without a key should fall back to plaintext storage")
}

func TestCreateEncryptor_EmptyKeyProd(t *testing.T) {
	_, err := CreateEncryptor("", false, nil)
	require.Error(t, err)
}

func TestCreateEncryptor_HexKey(t *testing.T) {
	raw := make([]byte, 32)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	enc, err := CreateEncryptor(hex.EncodeToString(raw), false, nil)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("170cm"))
	require.NoError(t, err)
	pt, err := enc.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "170cm", string(pt))
}

func TestCreateEncryptor_PassphraseKey(t *testing.T) {
	// Non-hex keys are hashed down to 32 bytes rather than rejected.
	enc, err := CreateEncryptor("correct horse battery staple", false, nil)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("peanuts"))
	require.NoError(t, err)
	pt, err := enc.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "peanuts", string(pt))
}

func TestCreateEncryptor_SameKeyInteroperates(t *testing.T) {
	a, err := CreateEncryptor("shared-key", false, nil)
	require.NoError(t, err)
	b, err := CreateEncryptor("shared-key", false, nil)
	require.NoError(t, err)

	ct, err := a.Encrypt([]byte("hello"))
	require.NoError(t, err)
	pt, err := b.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(pt))
}
