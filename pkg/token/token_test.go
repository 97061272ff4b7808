package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	t.Run("Should round-trip access token claims", func(t *testing.T) {
		svc := newTestService()

		tok, err := svc.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		claims, err := svc.ValidateAccessToken(tok)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "CANDIDATE", claims.Role)
		assert.Equal(t, TypeAccess, claims.TokenType)
		assert.Equal(t, "7", claims.Subject)
	})

	t.Run("Should reject a refresh token on the access path", func(t *testing.T) {
		svc := newTestService()

		refresh, err := svc.GenerateRefreshToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		_, err = svc.ValidateAccessToken(refresh)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Should reject an access token on the refresh path", func(t *testing.T) {
		svc := newTestService()

		access, err := svc.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		_, err = svc.ValidateRefreshToken(access)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Should reject tokens signed with a different secret", func(t *testing.T) {
		svc := newTestService()
		other := NewService("other-secret", "other-refresh", 15*time.Minute, 24*time.Hour)

		tok, err := other.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		_, err = svc.ValidateAccessToken(tok)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Should reject garbage input", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestExpiry(t *testing.T) {
	t.Run("Should report expired tokens distinctly", func(t *testing.T) {
		svc := newTestService()

		issued := time.Now()
		svc.now = func() time.Time { return issued }
		tok, err := svc.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
		_, err = svc.ValidateAccessToken(tok)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("Should accept tokens just inside the TTL", func(t *testing.T) {
		svc := newTestService()

		issued := time.Now()
		svc.now = func() time.Time { return issued }
		tok, err := svc.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(14 * time.Minute) }
		_, err = svc.ValidateAccessToken(tok)
		assert.NoError(t, err)
	})

	t.Run("Should refuse to issue with a zero TTL", func(t *testing.T) {
		svc := NewService("s", "s", 0, 0)
		_, err := svc.GenerateAccessToken(7, "jane@example.com", "CANDIDATE")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
