// Package auth holds the server-side primitives for the primary factor and
// session tokens: the argon2id credential hasher and the JWT codec.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session id in jti and the user id in sub.
type Claims struct {
	jwt.RegisteredClaims
	Role guard.Role `json:"role"`
	MFA  bool       `json:"mfa"`
}

// TokenCodec signs and parses HS256 session tokens. It only checks the
// signature and lifetime; revocation lives in the sessions table.
type TokenCodec struct {
	key []byte
	now func() time.Time
}

// NewTokenCodec returns a codec checking expiry against now, or the wall
// clock when now is nil.
func NewTokenCodec(key []byte, now func() time.Time) *TokenCodec {
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{key: key, now: now}
}

func (c *TokenCodec) Sign(sessionID, userID string, role guard.Role, mfa bool, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
		MFA:  mfa,
	})

	tokenString, err := token.SignedString(c.key)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrSessionExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
