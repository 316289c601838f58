package credentials

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHash(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		first := GenerateHash("test12345", "abcdef")
		second := GenerateHash("test12345", "abcdef")
		assert.Equal(t, first, second, "same password and salt must hash identically")
	})

	t.Run("FixedLength", func(t *testing.T) {
		hash := GenerateHash("hello12345", "00ff")
		assert.Len(t, hash, 64)
		_, err := hex.DecodeString(hash)
		assert.NoError(t, err, "hash should be hex encoded")
	})

	t.Run("SaltChangesDigest", func(t *testing.T) {
		assert.NotEqual(t,
			GenerateHash("test12345", "salt-a"),
			GenerateHash("test12345", "salt-b"))
	})

	t.Run("PasswordChangesDigest", func(t *testing.T) {
		assert.NotEqual(t,
			GenerateHash("password-a", "salt"),
			GenerateHash("password-b", "salt"))
	})
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt(32)
	require.NoError(t, err)
	assert.Len(t, salt, 64, "32 bytes of entropy encode to 64 hex characters")

	_, err = hex.DecodeString(salt)
	assert.NoError(t, err)

	other, err := GenerateSalt(32)
	require.NoError(t, err)
	assert.NotEqual(t, salt, other, "salts should not repeat")
}
