package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateAccessToken(42, "user@example.com", "CUSTOMER", true, testSecret, 15)
	require.NoError(t, err)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.True(t, claims.IsActive)
	assert.Equal(t, "bulivard", claims.Issuer)
}

func TestTokensAreUnique(t *testing.T) {
	// Two tokens minted back to back (same second, same claims) must
	// still differ, or session rotation could re-issue its own input.
	first, err := GenerateRefreshToken(42, "user@example.com", "CUSTOMER", true, testSecret, 7)
	require.NoError(t, err)
	second, err := GenerateRefreshToken(42, "user@example.com", "CUSTOMER", true, testSecret, 7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstClaims, err := Validate(first, testSecret)
	require.NoError(t, err)
	secondClaims, err := Validate(second, testSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(42, "user@example.com", "CUSTOMER", true, testSecret, 15)
	require.NoError(t, err)

	_, err = Validate(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateExpired(t *testing.T) {
	// Negative TTL produces an already-expired token.
	token, err := GenerateAccessToken(42, "user@example.com", "CUSTOMER", true, testSecret, -1)
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateGarbage(t *testing.T) {
	_, err := Validate("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeSkipsVerification(t *testing.T) {
	// Expired and foreign-signed tokens still decode.
	token, err := GenerateRefreshToken(7, "gone@example.com", "MANAGER", false, "some-other-secret", -1)
	require.NoError(t, err)

	claims, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "MANAGER", claims.Role)

	_, err = Decode("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
