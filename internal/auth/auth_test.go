package auth

import (
	"testing"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Role: models.RoleAdmin}

	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	identity, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("secret", &models.User{ID: 1, Role: models.RoleStaff}, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := IssueToken("secret", &models.User{ID: 1, Role: models.RoleAdmin}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, VerifyPassword(hash, "admin123"))
	assert.False(t, VerifyPassword(hash, "admin124"))
}
