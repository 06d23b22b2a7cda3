package service

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := hashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.True(t, verifyPassword(hash, "s3cret"))
	assert.False(t, verifyPassword(hash, "wrong"))
	assert.False(t, isLegacyHash(hash))
}

func TestVerifyPassword_LegacySha256(t *testing.T) {
	sum := sha256.Sum256([]byte("oldpass"))
	legacy := hex.EncodeToString(sum[:])

	require.True(t, isLegacyHash(legacy))
	assert.True(t, verifyPassword(legacy, "oldpass"))
	assert.False(t, verifyPassword(legacy, "wrong"))
}

func TestIsLegacyHash_Shape(t *testing.T) {
	assert.False(t, isLegacyHash(""))
	assert.False(t, isLegacyHash("abc"))
	// Right length, not hex.
	notHex := "zz" + hex.EncodeToString(make([]byte, 31))
	assert.False(t, isLegacyHash(notHex))
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		p, err := generatePassword()
		require.NoError(t, err)
		require.Len(t, p, generatedPasswordLength)
		for _, r := range p {
			assert.Contains(t, passwordAlphabet, string(r))
		}
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1, "passwords should not repeat")
}
