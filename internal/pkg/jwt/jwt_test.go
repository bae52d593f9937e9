package jwt

import (
	"testing"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("sup-1", "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	supervisorID, ok := decoded.Get("supervisor_id")
	require.True(t, ok)
	assert.Equal(t, "sup-1", supervisorID)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "admin", role)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken("sup-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	tokenType, ok := decoded.Get("type")
	require.True(t, ok)
	assert.Equal(t, "refresh", tokenType)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("sup-1", "admin@example.com", user.RoleAdmin)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken("sup-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
