package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-backend/internal/config"
	"resort-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "resort-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	user := &models.User{ID: 7, Email: "ops@resort.test", Role: "manager", IsActive: true}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ops@resort.test", claims.Email)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	_, err := mgr.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTempTokenIsNotARegularToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	user := &models.User{ID: 3, Email: "admin@resort.test", Role: "admin", IsActive: true}

	temp, err := mgr.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, "2fa_pending", claims.Type)

	// A full token must not validate as a temp token
	full, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	_, err = mgr.ValidateTempToken(full)
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
