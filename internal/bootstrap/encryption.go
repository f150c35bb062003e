package bootstrap

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"

	"github.com/vitaltrack/vitaltrack/internal/data/cryptoutil"
)

// CreateEncryptor creates the AES-GCM encryptor protecting profile fields at
// rest. If the key is a 32-byte hex string, it decodes it. Otherwise, it hashes
// the key to get a 32-byte key. An empty key is tolerated only in development,
// where a plaintext encryptor is substituted with a warning.
//
//nolint:ireturn // Returning interface is intentional for encryptor abstraction
func CreateEncryptor(key string, isDev bool, logger *slog.Logger) (cryptoutil.Encryptor, error) {
	if key == "" {
		if !isDev {
			return nil, errors.New("PROFILE_ENCRYPTION_KEY is required outside development")
		}
		if logger != nil {
			logger.Warn("encryption key is empty, profile fields will be stored unencrypted")
		}
		return cryptoutil.PlainEncryptor{}, nil
	}

	// If the key is a hex string, decode it
	var keyBytes []byte
	if decoded, err := hex.DecodeString(key); err == nil && len(decoded) == 32 {
		keyBytes = decoded
	} else {
		// Otherwise, hash the key to get a 32-byte key
		hash := sha256.Sum256([]byte(key))
		keyBytes = hash[:]
	}

	return cryptoutil.NewAESGCMEncryptor(keyBytes)
}
