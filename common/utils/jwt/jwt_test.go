package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	cfg := AuthConfig{Secret: "test-secret", Expire: 3600}

	result, err := GenerateToken(10001, cfg, "jwt-1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := ParseToken(result.Token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, int64(10001), claims.UserId)
	assert.Equal(t, "jwt-1", claims.JwtId)
	assert.Equal(t, result.ExpireAt, claims.ExpiresAt.Unix())
}

func TestParseWrongSecret(t *testing.T) {
	cfg := AuthConfig{Secret: "test-secret", Expire: 3600}
	result, err := GenerateToken(10001, cfg, "jwt-1")
	require.NoError(t, err)

	_, err = ParseToken(result.Token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := GenerateToken(1, AuthConfig{Secret: "", Expire: 3600}, "x")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = GenerateToken(1, AuthConfig{Secret: "s", Expire: 0}, "x")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}
