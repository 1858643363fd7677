package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Thirty days. Memcached treats larger expiration values as absolute Unix
// timestamps instead of relative seconds.
const memcacheMaxRelativeTTL = 30 * 24 * time.Hour

// memcacheClient is the subset of *memcache.Client the store uses.
type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

// MemcacheStore implements Store on top of Memcached. Sessions are stored as
// JSON objects at key = identifier, with expiry delegated to Memcached. The
// gomemcache client does not take contexts; operation deadlines come from
// the client's own Timeout.
type MemcacheStore struct {
	client memcacheClient
}

// NewMemcacheStore creates a Memcached-backed session store
func NewMemcacheStore(client *memcache.Client) *MemcacheStore {
	return &MemcacheStore{client: client}
}

// Load retrieves and decodes the record for the given identifier. Cache
// misses and undecodable payloads both map to ErrSessionNotFound.
func (s *MemcacheStore) Load(ctx context.Context, id string) (map[string]any, error) {
	item, err := s.client.Get(id)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var data map[string]any
	if err := json.Unmarshal(item.Value, &data); err != nil {
		return nil, ErrSessionNotFound
	}

	return data, nil
}

// Save encodes and upserts the record with the given ttl.
func (s *MemcacheStore) Save(ctx context.Context, id string, data map[string]any, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	item := &memcache.Item{
		Key:        id,
		Value:      payload,
		Expiration: memcacheExpiration(ttl),
	}

	if err := s.client.Set(item); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}

// Delete removes the record; a cache miss counts as success.
func (s *MemcacheStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(id); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// memcacheExpiration converts a ttl to Memcached's expiration encoding:
// relative seconds up to 30 days, an absolute Unix timestamp beyond that,
// zero for no expiry.
func memcacheExpiration(ttl time.Duration) int32 {
	if ttl <= 0 {
		return 0
	}
	if ttl > memcacheMaxRelativeTTL {
		return int32(time.Now().Add(ttl).Unix())
	}
	return int32(ttl / time.Second)
}
