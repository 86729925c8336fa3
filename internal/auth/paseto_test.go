package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaseto_RoundTripAndExpiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	s, err := NewPasetoService([]byte("short secret is fine"))
	require.NoError(t, err)
	s.now = func() time.Time { return issued }

	token, err := s.CreateToken(9, "carol@example.com")
	require.NoError(t, err)

	claims, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.Equal(t, "carol@example.com", claims.Email)

	s.now = func() time.Time { return issued.Add(TokenTTL + time.Second) }
	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPaseto_RejectsForeignKeyAndGarbage(t *testing.T) {
	a, err := NewPasetoService([]byte("secret-a"))
	require.NoError(t, err)
	b, err := NewPasetoService([]byte("secret-b"))
	require.NoError(t, err)

	token, err := a.CreateToken(1, "a@example.com")
	require.NoError(t, err)

	_, err = b.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.VerifyToken("v4.local.not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewPasetoService_EmptySecret(t *testing.T) {
	_, err := NewPasetoService(nil)
	assert.Error(t, err)
}
