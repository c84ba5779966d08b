package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	j := NewJWT("testsecret")

	tokenString, err := j.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := j.ParseAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWT_ParseGarbage(t *testing.T) {
	j := NewJWT("testsecret")

	_, err := j.ParseAccessToken("not-a-token")
	require.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("one-secret")
	verifier := NewJWT("another-secret")

	tokenString, err := issuer.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(tokenString)
	require.Error(t, err)
}

func TestJWT_RejectsWrongTokenType(t *testing.T) {
	secret := "testsecret"
	j := NewJWT(secret)

	now := time.Now()
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:    42,
		TokenType: "refresh",
	})
	tokenString, err := other.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(tokenString)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token type mismatch")
}

func TestJWT_RejectsExpired(t *testing.T) {
	secret := "testsecret"
	j := NewJWT(secret)

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
		UserID:    42,
		TokenType: typeAccess,
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(tokenString)
	require.Error(t, err)
}
