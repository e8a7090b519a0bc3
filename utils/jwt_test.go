// File: utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"edspire/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripUsesConfiguredSecret(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	token, err := GenerateToken("user-1", "a@b.test", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenRejectedAfterSecretRotation(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	config.AppConfig.JWTSecret = "old-secret"
	token, err := GenerateToken("user-1", "a@b.test", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "new-secret"
	_, err = ExtractIDFromToken(token)
	require.Error(t, err, "tokens signed with a rotated secret must fail")
}

func TestExtractIDFromTamperedToken(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	token, err := GenerateToken("user-1", "a@b.test", time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token + "x")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
