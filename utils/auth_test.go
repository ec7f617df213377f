package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT("abc123", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UserID)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("abc123", []byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", []byte("test-secret"))
	assert.Error(t, err)
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, first, 40, "20 random bytes hex-encoded")
	assert.Regexp(t, "^[0-9a-f]+$", first)

	second, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPasswordResetBody(t *testing.T) {
	subject, html := PasswordResetBody("http://localhost:8000", "deadbeef")
	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "http://localhost:8000/reset?resetToken=deadbeef")
}
