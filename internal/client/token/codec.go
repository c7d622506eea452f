// Package token decodes identity claims out of a bearer credential for
// display. It never verifies signatures or expiry, so nothing it returns may
// feed an access decision; authorization state lives in session.Store.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the display view of a credential's claims.
type Identity struct {
	Username  string
	Subject   string
	SessionID string
	ExpiresAt time.Time
}

// IsZero reports whether nothing could be decoded.
func (i Identity) IsZero() bool { return i.Username == "" }

// Claims mirrors the access-token payload issued by the auth service:
// the username travels in data.username.
type Claims struct {
	Data      map[string]string `json:"data,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// DecodeIdentity extracts the identity from cred without verifying it.
// Any problem (empty input, malformed token, missing username) yields the
// zero Identity; it never panics or returns an error.
func DecodeIdentity(cred string) (id Identity) {
	if cred == "" {
		return Identity{}
	}
	defer func() {
		if recover() != nil {
			id = Identity{}
		}
	}()

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(cred, claims); err != nil {
		return Identity{}
	}

	username := claims.Data["username"]
	if username == "" {
		return Identity{}
	}

	id = Identity{
		Username:  username,
		Subject:   claims.Subject,
		SessionID: claims.SessionID,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id
}
