package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tokenString, err := maker.Sign("student@test.com", "Test Student")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := maker.Verify(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "student@test.com", claims.Email)
	assert.Equal(t, "Test Student", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	claims := Claims{
		Email: "student@test.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = maker.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tokenString, err := NewMaker("other-secret", time.Hour).Sign("student@test.com", "")
	require.NoError(t, err)

	_, err = maker.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	// alg=none tokens must never verify
	claims := Claims{Email: "student@test.com"}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = maker.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingEmail(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tokenString, err := maker.Sign("", "No Email")
	require.NoError(t, err)

	_, err = maker.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
