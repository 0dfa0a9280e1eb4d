// Package token signs and verifies the short-lived identity tokens the
// API hands out from POST /jwt and expects back in Authorization
// headers. Trust in the asserted identity is established upstream;
// this package only guarantees integrity and expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type Maker struct {
	secret []byte
	ttl    time.Duration
}

func NewMaker(secret string, ttl time.Duration) *Maker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Maker) Sign(email, name string) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(m.secret)
}

func (m *Maker) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
