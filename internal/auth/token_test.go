package auth

import (
	"testing"
	"time"

	"github.com/mehedihasansabbir220/task-manager/internal/models"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Issue(42, models.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, models.RoleUser, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.IssueWithTTL(42, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongKey(t *testing.T) {
	tokens := NewTokenService("test-secret")
	other := NewTokenService("other-secret")

	signed, err := other.Issue(42, models.RoleUser)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tokens.Verify("")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
