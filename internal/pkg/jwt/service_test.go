package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Minute, "nexture")
	uid := uuid.New()

	tok, err := svc.GenerateAccessToken(uid, "dev@example.com")
	require.NoError(t, err)

	c, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uid, c.UserID)
	assert.Equal(t, "dev@example.com", c.Email)
	assert.Equal(t, TokenTypeAccess, c.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute, "nexture")
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_Invalid(t *testing.T) {
	svc := NewHMACService("secret", time.Minute, "nexture")
	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("other", time.Minute, "nexture").ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("secret", time.Minute, "someone-else").ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	refresh := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID:    uuid.New(),
		TokenType: "refresh",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "nexture",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	raw, err := refresh.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.GenerateAccessToken(uuid.Nil, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
