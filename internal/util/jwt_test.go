package util

import (
	"testing"
	"time"

	"skillmatrix/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "dev@example.com", Role: model.RoleDeveloper}
	user.ID = 42

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleDeveloper, claims.Role)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "dev@example.com", Role: model.RoleDeveloper}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "dev@example.com", Role: model.RoleDeveloper}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
