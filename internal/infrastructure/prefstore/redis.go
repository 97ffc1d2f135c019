package prefstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// RedisKeyPrefix namespaces preference hashes: prefs:<session id> -> {userRole: ...}.
	RedisKeyPrefix  = "prefs:"
	defaultRedisTTL = 30 * 24 * time.Hour
)

// RedisProvider stores each session's preferences in one Redis hash.
// The hash expiry is refreshed on every write.
type RedisProvider struct {
	Rdb *redis.Client
	TTL time.Duration // zero means 30 days
}

func (p *RedisProvider) ForSession(sessionID string) Store {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &redisStore{rdb: p.Rdb, key: RedisKeyPrefix + sessionID, ttl: ttl}
}

type redisStore struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func (s *redisStore) Get(ctx context.Context, field string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *redisStore) Set(ctx context.Context, field, value string) error {
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, s.key, field, value)
	pipe.Expire(ctx, s.key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}
