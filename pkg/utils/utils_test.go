package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, "backoffice-api")
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "admin@example.com", "Admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
}

func TestJWTRejectsOtherSecretAndExpired(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour, "x").GenerateAccessToken(uuid.New(), "a@b.co", "Admin")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour, "x").ValidateAccessToken(token)
	assert.Error(t, err)

	expired, err := NewJWTManager("one", -time.Minute, "x").GenerateAccessToken(uuid.New(), "a@b.co", "Admin")
	require.NoError(t, err)
	_, err = NewJWTManager("one", time.Hour, "x").ValidateAccessToken(expired)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestGenerateBillNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^BILL-[1-9][0-9]{5}$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, pattern, GenerateBillNumber())
	}
}
