package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/liuwen/bookmall/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "alice@example.com", []string{"ROLE_USER", "ROLE_ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.HasRole("ROLE_ADMIN"))
	assert.False(t, claims.HasRole("ROLE_MANAGER"))
}

func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager("secret-one-0123456789-0123456789", time.Hour, 24*time.Hour)
	m2 := NewManager("secret-two-0123456789-0123456789", time.Hour, 24*time.Hour)

	pair, err := m1.GenerateToken(1, "a@b.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_ParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", -time.Minute, 24*time.Hour)

	pair, err := m.GenerateToken(1, "a@b.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManager_RefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(7, "bob@example.com", []string{"ROLE_USER"})
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}
