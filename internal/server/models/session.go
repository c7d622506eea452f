package models

import "time"

// Session backs one issued access token. Deleting it revokes the token even
// before it expires.
type Session struct {
	ID        string
	UserID    string
	Expires   time.Time
	CreatedAt time.Time
}
