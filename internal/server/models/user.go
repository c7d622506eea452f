// Package models holds the records kept by the stand-in API.
package models

import "time"

// Roles known to the API. Only admins may use the console endpoints;
// external systems may only classify.
const (
	RoleAdmin          = "admin"
	RoleExternalSystem = "ext_sys"
)

type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}
