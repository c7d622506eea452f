package models

import "time"

// ExternalSystem is a registered API client. Only a hash of its access key
// is kept.
type ExternalSystem struct {
	Name      string
	KeyHash   []byte
	CreatedAt time.Time
}

// SystemUserID is the session owner used for tokens issued to a system.
func SystemUserID(name string) string { return "system:" + name }
