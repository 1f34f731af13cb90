package shoptests

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgedTokenIsWellFormed(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	token, err := newForgedToken(now)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	var claims forgedClaims
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())
	assert.Equal(t, forgedIssuer, claims.Issuer)
	assert.True(t, strings.HasPrefix(claims.Subject, "user_"))
	assert.Equal(t, "admin", claims.Metadata["role"])
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestForgedTokensUseDifferentKeys(t *testing.T) {
	now := time.Now()
	a, err := newForgedToken(now)
	require.NoError(t, err)
	b, err := newForgedToken(now)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
