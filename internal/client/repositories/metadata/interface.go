// Package metadata stores the console's local key/value settings (last
// username, page size, sort order). The session credential is never stored
// here.
package metadata

import (
	"context"
	"time"
)

// Entry is one stored setting.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns common.ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
}
