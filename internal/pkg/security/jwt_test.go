package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", time.Minute*30, time.Hour*24)
}

func TestGenerateTokenPair(t *testing.T) {
	tm := newTestManager()

	pair, err := tm.GenerateTokenPair(42)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := tm.ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	claims, err = tm.ValidateRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidateTokenTypeMismatch(t *testing.T) {
	tm := newTestManager()

	pair, err := tm.GenerateTokenPair(7)
	require.NoError(t, err)

	// 刷新令牌不能当访问令牌用，反之亦然
	_, err = tm.ValidateAccessToken(pair.Refresh)
	assert.Error(t, err)

	_, err = tm.ValidateRefreshToken(pair.Access)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("another-secret", time.Minute*30, time.Hour*24)

	pair, err := tm.GenerateTokenPair(7)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.Access)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, -time.Minute)

	pair, err := tm.GenerateTokenPair(7)
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(pair.Access)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	tm := newTestManager()

	pair, err := tm.GenerateTokenPair(7)
	require.NoError(t, err)

	sig, err := ExtractSignature(pair.Access)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = ExtractSignature("not-a-jwt")
	assert.Error(t, err)
}
