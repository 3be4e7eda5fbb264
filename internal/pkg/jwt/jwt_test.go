package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklite/attendance-backend-go/internal/domain/user"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	// The verifier middleware reads these claims off the decoded token.
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	employeeID, _ := token.Get("employee_id")
	role, _ := token.Get("role")
	tokenType, _ := token.Get("type")
	assert.Equal(t, "emp-1", employeeID)
	assert.Equal(t, string(user.RoleManager), role)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")

	_, _, err := svc.GenerateAccessToken("emp-1", user.RoleEmployee)
	assert.Error(t, err)
}
