// Package auth issues and verifies the API's access tokens and hashes the
// secrets it stores.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access-token payload. The username and role travel in
// data, which is where the console looks for them.
type Claims struct {
	Data      map[string]string `json:"data"`
	SessionID string            `json:"session_id"`
	jwt.RegisteredClaims
}

// Username returns data.username.
func (c *Claims) Username() string { return c.Data["username"] }

// Role returns data.role.
func (c *Claims) Role() string { return c.Data["role"] }

// Subject identifies whom a token is issued to.
type Subject struct {
	UserID    string
	UserName  string
	Role      string
	SessionID string
}

// GenerateToken signs an HS256 token for s that expires after validity.
func GenerateToken(s Subject, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Data:      map[string]string{"username": s.UserName, "role": s.Role},
		SessionID: s.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// yield common.ErrTokenExpired, everything else common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.SessionID == "" || claims.Username() == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
