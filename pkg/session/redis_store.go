package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis client. Each session is a
// JSON object stored at key = identifier (optionally prefixed); expiry uses
// Redis's native TTL mechanism. SET is atomic per key, so concurrent readers
// never observe a partial record.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces session keys in a shared Redis database
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	store := &RedisStore{client: client}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Load retrieves and decodes the record for the given identifier. A missing
// key and an undecodable payload both map to ErrSessionNotFound: a corrupt
// record falls open to a fresh session instead of failing the request.
// Connectivity errors are loud.
func (s *RedisStore) Load(ctx context.Context, id string) (map[string]any, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, ErrSessionNotFound
	}

	return data, nil
}

// Save encodes and upserts the record, applying the ttl via Redis expiry.
// A ttl of zero stores the key without expiration.
func (s *RedisStore) Save(ctx context.Context, id string, data map[string]any, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(id), payload, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}

// Delete removes the record. DEL on a missing key is a no-op in Redis, so
// deletion is idempotent.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}
