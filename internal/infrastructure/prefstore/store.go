// Package prefstore persists per-session dashboard preferences (the active role) as
// plain-text key/value pairs.
package prefstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Backend names accepted by NewProvider (PREFERENCE_STORE).
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var (
	ErrUnknownBackend = errors.New("unknown preference store backend")
	ErrMissingClient  = errors.New("preference store backend has no client configured")
)

// Store is one session's preference namespace.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Provider hands out the Store of a session.
type Provider interface {
	ForSession(sessionID string) Store
}

// NewProvider returns the Provider for backend. rdb and db may be nil when their backend is not selected.
func NewProvider(backend string, rdb *redis.Client, db *gorm.DB) (Provider, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryProvider(), nil
	case BackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("%s: %w", backend, ErrMissingClient)
		}
		return &RedisProvider{Rdb: rdb}, nil
	case BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("%s: %w", backend, ErrMissingClient)
		}
		return &GormProvider{DB: db}, nil
	default:
		return nil, fmt.Errorf("%q: %w", backend, ErrUnknownBackend)
	}
}
